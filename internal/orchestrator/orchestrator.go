// Package orchestrator runs the full analysis pipeline: cache lookup,
// parallel provider fan-out with per-provider timeouts, fallback resolution,
// scoring, recommendations, and persistence.
package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/fallback"
	"github.com/prospect-intel/backend/internal/metrics"
	"github.com/prospect-intel/backend/internal/recommend"
	"github.com/prospect-intel/backend/internal/scoring"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/namekey"
)

// Provider clients, narrowed to what the pipeline calls so tests can stub
// them.
type EnrichmentProvider interface {
	Enrich(ctx context.Context, query domain.CompanyQuery) (*domain.CompanyInfo, error)
}

type NewsProvider interface {
	Search(ctx context.Context, companyName string) (*domain.NewsAnalysis, error)
}

type JobsProvider interface {
	Search(ctx context.Context, companyName string) (*domain.JobAnalysis, error)
}

type WebsiteProvider interface {
	Analyze(ctx context.Context, companyDomain string) (*domain.WebsiteAnalysis, error)
}

// AnalysisCache is the read-through cache in front of the fan-out.
type AnalysisCache interface {
	GetAnalysis(ctx context.Context, companyName string) (*domain.Analysis, bool, error)
	SetAnalysis(ctx context.Context, analysis *domain.Analysis) error
}

// AnalysisStore persists completed runs for the history endpoint.
type AnalysisStore interface {
	InsertAnalysis(ctx context.Context, analysis *domain.Analysis) error
}

// Timeouts carries the per-provider deadline for each fan-out branch.
type Timeouts struct {
	Enrichment time.Duration
	News       time.Duration
	Jobs       time.Duration
	Website    time.Duration
}

// ProgressFunc receives step updates during an analysis, used by the
// websocket stream. Never called after Analyze returns.
type ProgressFunc func(step string, detail string)

type Service struct {
	enrichment  EnrichmentProvider
	news        NewsProvider
	jobs        JobsProvider
	website     WebsiteProvider
	cache       AnalysisCache
	store       AnalysisStore
	scorer      *scoring.Engine
	recommender *recommend.Generator
	timeouts    Timeouts
}

func NewService(
	enrichmentClient EnrichmentProvider,
	newsClient NewsProvider,
	jobsClient JobsProvider,
	websiteClient WebsiteProvider,
	cache AnalysisCache,
	store AnalysisStore,
	scorer *scoring.Engine,
	recommender *recommend.Generator,
	timeouts Timeouts,
) *Service {
	return &Service{
		enrichment:  enrichmentClient,
		news:        newsClient,
		jobs:        jobsClient,
		website:     websiteClient,
		cache:       cache,
		store:       store,
		scorer:      scorer,
		recommender: recommender,
		timeouts:    timeouts,
	}
}

// Analyze runs the pipeline for one company. Provider failures degrade to
// fallback data and a cache lookup error is treated as a miss; only an
// empty name is fatal.
func (s *Service) Analyze(ctx context.Context, query domain.CompanyQuery, progress ProgressFunc) (*domain.Analysis, error) {
	if namekey.Normalize(query.Name) == "" {
		return nil, domain.ErrEmptyCompanyName
	}
	if progress == nil {
		progress = func(string, string) {}
	}

	start := time.Now()

	if s.cache != nil {
		if cached, found, err := s.cache.GetAnalysis(ctx, query.Name); err != nil {
			logger.Warn("cache lookup failed", zap.Error(err))
		} else if found {
			metrics.CacheHits.Inc()
			metrics.AnalysisTotal.WithLabelValues("cache_hit").Inc()
			metrics.AnalysisDuration.WithLabelValues("true").
				Observe(time.Since(start).Seconds())
			cached.Cached = true
			cached.LatencyMS = int(time.Since(start).Milliseconds())
			progress("cache", "returning cached analysis")
			return cached, nil
		}
		metrics.CacheMisses.Inc()
	}

	progress("providers", "querying data providers")
	profile := s.collect(ctx, query, progress)

	progress("fallback", "resolving missing data")
	fallback.Resolve(profile)
	for _, src := range profile.Sources {
		if src.Status == domain.StatusFallback {
			metrics.FallbacksTotal.WithLabelValues(string(src.Provider)).Inc()
		}
	}

	progress("scoring", "computing readiness score")
	breakdown := s.scorer.Score(profile)
	metrics.ReadinessScore.WithLabelValues(breakdown.Methodology).Observe(breakdown.Total)
	metrics.ConfidenceScore.Observe(breakdown.Confidence)

	progress("recommendations", "generating recommendations")
	recs := s.recommender.Generate(ctx, profile, breakdown)
	category := s.recommender.Category(breakdown.Total)
	financial := breakdown.Sector == "financial_services"
	decisionMakers := recommend.DecisionMakers(query.Name, financial)

	analysis := &domain.Analysis{
		ID:              uuid.New().String(),
		CompanyName:     query.Name,
		Domain:          profile.Company.Domain,
		Profile:         profile,
		Breakdown:       breakdown,
		Category:        category,
		Recommendations: recs,
		DecisionMakers:  decisionMakers,
		LatencyMS:       int(time.Since(start).Milliseconds()),
		Cached:          false,
		Timestamp:       time.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.SetAnalysis(ctx, analysis); err != nil {
			logger.Warn("cache write failed", zap.Error(err))
		}
	}
	if s.store != nil {
		if err := s.store.InsertAnalysis(ctx, analysis); err != nil {
			logger.Warn("analysis persistence failed", zap.Error(err))
		}
	}

	metrics.AnalysisTotal.WithLabelValues("ok").Inc()
	metrics.AnalysisDuration.WithLabelValues("false").
		Observe(time.Since(start).Seconds())

	logger.Info("analysis completed",
		zap.String("company", query.Name),
		zap.Float64("score", breakdown.Total),
		zap.Float64("confidence", breakdown.Confidence),
		zap.Int("latency_ms", analysis.LatencyMS))

	progress("done", "analysis complete")
	return analysis, nil
}

// collect fans out to all providers concurrently. Each branch gets its own
// deadline; a failed branch records an error source and leaves its section
// nil for the fallback resolver.
func (s *Service) collect(ctx context.Context, query domain.CompanyQuery, progress ProgressFunc) *domain.CompositeProfile {
	profile := &domain.CompositeProfile{Query: query}

	results := make(chan domain.ProviderResult, 4)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result := s.runProvider(gctx, domain.ProviderEnrichment, s.timeouts.Enrichment, func(ctx context.Context) error {
			q := query
			if q.Domain == "" {
				q.Domain = namekey.Domain(q.Name)
			}
			info, err := s.enrichment.Enrich(ctx, q)
			if err != nil {
				return err
			}
			profile.Company = info
			return nil
		})
		results <- result
		return nil
	})

	g.Go(func() error {
		result := s.runProvider(gctx, domain.ProviderNews, s.timeouts.News, func(ctx context.Context) error {
			news, err := s.news.Search(ctx, query.Name)
			if err != nil {
				return err
			}
			profile.News = news
			return nil
		})
		results <- result
		return nil
	})

	g.Go(func() error {
		result := s.runProvider(gctx, domain.ProviderJobs, s.timeouts.Jobs, func(ctx context.Context) error {
			jobs, err := s.jobs.Search(ctx, query.Name)
			if err != nil {
				return err
			}
			profile.Jobs = jobs
			return nil
		})
		results <- result
		return nil
	})

	g.Go(func() error {
		result := s.runProvider(gctx, domain.ProviderWebsite, s.timeouts.Website, func(ctx context.Context) error {
			companyDomain := query.Domain
			if companyDomain == "" {
				companyDomain = namekey.Domain(query.Name)
			}
			site, err := s.website.Analyze(ctx, companyDomain)
			if err != nil {
				return err
			}
			profile.Website = site
			return nil
		})
		results <- result
		return nil
	})

	_ = g.Wait()
	close(results)

	for result := range results {
		profile.Sources = append(profile.Sources, result)
		progress("provider:"+string(result.Provider), string(result.Status))
	}

	return profile
}

func (s *Service) runProvider(ctx context.Context, provider domain.Provider, timeout time.Duration, fn func(ctx context.Context) error) domain.ProviderResult {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	metrics.ProviderDuration.WithLabelValues(string(provider)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderRequests.WithLabelValues(string(provider), "error").Inc()
		logger.Warn("provider failed",
			zap.String("provider", string(provider)),
			zap.Error(err))
		return domain.ProviderResult{Provider: provider, Status: domain.StatusError, Err: err.Error()}
	}

	metrics.ProviderRequests.WithLabelValues(string(provider), "ok").Inc()
	return domain.ProviderResult{Provider: provider, Status: domain.StatusLive}
}
