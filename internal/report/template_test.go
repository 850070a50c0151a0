package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
)

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		ID:          "test-id",
		CompanyName: "Acme Robotics",
		Category:    "Advanced",
		Profile: &domain.CompositeProfile{
			Query: domain.CompanyQuery{Name: "Acme Robotics"},
			Company: &domain.CompanyInfo{
				Name: "Acme Robotics", Industry: "Technology",
				EmployeeCount: 1200, FoundedYear: 2012,
				Headquarters: "Austin, TX",
				TechTags:     []string{"Python", "Kubernetes"},
			},
		},
		Breakdown: &domain.ScoreBreakdown{
			Components: map[string]domain.Component{
				"tech_hiring": {Score: 80, Weight: 0.25, Live: true},
				"ai_mentions": {Score: 60, Weight: 0.25, Live: false},
			},
			Total:       72.5,
			Confidence:  0.75,
			Sector:      "general",
			Methodology: "general",
		},
		Recommendations: &domain.Recommendations{
			Approach:      "Proof of concept approach",
			Messaging:     "Acme Robotics is well along the AI journey.",
			TalkingPoints: []string{"Point one", "Point two"},
			NextSteps:     []string{"Schedule a demo"},
		},
		DecisionMakers: []domain.DecisionMaker{
			{Name: "Pat Example", Title: "CTO", Priority: 1, Role: "Technology Leader"},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleAnalysis())
	require.NoError(t, err)

	assert.Contains(t, html, "Acme Robotics")
	assert.Contains(t, html, "72.5")
	assert.Contains(t, html, "Advanced")
	assert.Contains(t, html, "Pat Example")
	assert.Contains(t, html, "Schedule a demo")
	assert.Contains(t, html, "Tech Hiring")
	assert.Contains(t, html, "AI Mentions")
}

func TestRenderHTMLIncompleteAnalysis(t *testing.T) {
	_, err := RenderHTML(nil)
	assert.Error(t, err)

	broken := sampleAnalysis()
	broken.Breakdown = nil
	_, err = RenderHTML(broken)
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Tech Hiring", displayName("tech_hiring"))
	assert.Equal(t, "AI Mentions", displayName("ai_mentions"))
	assert.Equal(t, "AML KYC Capabilities", displayName("aml_kyc_capabilities"))
	assert.Equal(t, "AI ML Maturity", displayName("ai_ml_maturity"))
}

func TestScoreClass(t *testing.T) {
	assert.Equal(t, "high", scoreClass(80))
	assert.Equal(t, "high", scoreClass(65))
	assert.Equal(t, "medium", scoreClass(55))
	assert.Equal(t, "medium", scoreClass(50))
	assert.Equal(t, "low", scoreClass(20))
}
