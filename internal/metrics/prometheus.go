package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AnalysisDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospect_analysis_duration_seconds",
			Help:    "Company analysis duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"cached"},
	)

	AnalysisTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_analysis_total",
			Help: "Total number of company analyses",
		},
		[]string{"status"},
	)

	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_provider_requests_total",
			Help: "External provider requests by outcome",
		},
		[]string{"provider", "status"},
	)

	ProviderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospect_provider_duration_seconds",
			Help:    "External provider request duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"provider"},
	)

	FallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_fallbacks_total",
			Help: "Fallback data substitutions by provider",
		},
		[]string{"provider"},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prospect_cache_hits_total",
			Help: "Analysis cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "prospect_cache_misses_total",
			Help: "Analysis cache misses",
		},
	)

	ReadinessScore = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prospect_readiness_score",
			Help:    "Distribution of computed readiness scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		[]string{"methodology"},
	)

	ConfidenceScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prospect_confidence_score",
			Help:    "Distribution of analysis confidence values",
			Buckets: []float64{0, 0.25, 0.5, 0.75, 1.0},
		},
	)

	LLMTokensUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_llm_tokens_used_total",
			Help: "Total LLM tokens used",
		},
		[]string{"model"},
	)

	ReportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prospect_reports_generated_total",
			Help: "PDF reports generated by outcome",
		},
		[]string{"status"},
	)
)

func Init() {
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(AnalysisTotal)
	prometheus.MustRegister(ProviderRequests)
	prometheus.MustRegister(ProviderDuration)
	prometheus.MustRegister(FallbacksTotal)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(ReadinessScore)
	prometheus.MustRegister(ConfidenceScore)
	prometheus.MustRegister(LLMTokensUsed)
	prometheus.MustRegister(ReportsGenerated)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
