// Package scoring turns a composite company profile into a weighted 0-100
// AI readiness score. Two weight tables exist: a general one and one tuned
// for financial institutions, selected by sector detection.
package scoring

import (
	"math"
	"sort"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	MethodologyGeneral   = "general"
	MethodologyFinancial = "financial_services_optimized"
)

// Engine computes readiness scores. It holds no per-request state and is
// safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Score selects the weight table from the detected sector, computes every
// component, and folds them into a clamped weighted total. Confidence is the
// fraction of profile sections backed by live provider data.
func (e *Engine) Score(profile *domain.CompositeProfile) *domain.ScoreBreakdown {
	var breakdown *domain.ScoreBreakdown
	if IsFinancial(profile) {
		breakdown = scoreFinancial(profile)
	} else {
		breakdown = scoreGeneral(profile)
	}

	breakdown.Total = round1(clamp(weightedTotal(breakdown.Components)))
	breakdown.Confidence = confidence(profile)

	logger.Debug("readiness score computed",
		zap.String("company", profile.Query.Name),
		zap.String("methodology", breakdown.Methodology),
		zap.Float64("total", breakdown.Total),
		zap.Float64("confidence", breakdown.Confidence))
	return breakdown
}

// TopComponents returns component names ordered by score descending,
// used by the recommendation layer to pick talking points.
func TopComponents(b *domain.ScoreBreakdown) []string {
	names := make([]string, 0, len(b.Components))
	for name := range b.Components {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := b.Components[names[i]], b.Components[names[j]]
		if ci.Score != cj.Score {
			return ci.Score > cj.Score
		}
		return names[i] < names[j]
	})
	return names
}

func weightedTotal(components map[string]domain.Component) float64 {
	var total float64
	for _, c := range components {
		total += c.Score * c.Weight
	}
	return total
}

func confidence(profile *domain.CompositeProfile) float64 {
	if len(profile.Sources) == 0 {
		return 0
	}
	live := 0
	for _, s := range profile.Sources {
		if s.Status == domain.StatusLive {
			live++
		}
	}
	return round2(float64(live) / float64(len(profile.Sources)))
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
