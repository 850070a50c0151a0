package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

// Generator produces sales recommendations for a scored analysis. When an
// LLM client is configured it is tried first; template output is the fallback
// so the endpoint never fails on recommendation generation.
type Generator struct {
	llm        *LLMClient
	thresholds []float64
	categories []string
}

func NewGenerator(llm *LLMClient, thresholds []float64, categories []string) *Generator {
	return &Generator{llm: llm, thresholds: thresholds, categories: categories}
}

// Category maps the total score onto the configured label set.
func (g *Generator) Category(score float64) string {
	return Categorize(score, g.thresholds, g.categories)
}

// Generate returns recommendations for the profile. Errors from the LLM are
// logged and absorbed; the template path always succeeds.
func (g *Generator) Generate(ctx context.Context, profile *domain.CompositeProfile, breakdown *domain.ScoreBreakdown) *domain.Recommendations {
	category := g.Category(breakdown.Total)

	if g.llm != nil {
		recs, err := g.llm.Generate(ctx, profile, breakdown, category)
		if err == nil {
			return recs
		}
		logger.Warn("LLM recommendations failed, using templates",
			zap.String("company", profile.Query.Name),
			zap.Error(err))
	}

	return g.fromTemplates(profile, breakdown)
}

func (g *Generator) fromTemplates(profile *domain.CompositeProfile, breakdown *domain.ScoreBreakdown) *domain.Recommendations {
	score := breakdown.Total
	financial := breakdown.Sector == "financial_services"

	return &domain.Recommendations{
		Approach:       approachFor(score),
		Messaging:      messagingFor(score, profile.Query.Name),
		TalkingPoints:  talkingPointsFor(score, financial),
		NextSteps:      nextStepsFor(score),
		GeneratedByLLM: false,
	}
}
