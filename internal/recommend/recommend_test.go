package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
)

var (
	testThresholds = []float64{35, 50, 65, 80}
	testCategories = []string{
		"Not Ready", "Early Stage", "Developing", "Advanced", "AI Leader",
	}
)

func TestCategorizeBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "Not Ready"},
		{34.9, "Not Ready"},
		{35, "Early Stage"},
		{49.9, "Early Stage"},
		{50, "Developing"},
		{65, "Advanced"},
		{79.9, "Advanced"},
		{80, "AI Leader"},
		{100, "AI Leader"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Categorize(tt.score, testThresholds, testCategories),
			"score %.1f", tt.score)
	}
}

func TestDecisionMakersKnownCompany(t *testing.T) {
	dms := DecisionMakers("JPMorgan Chase & Co.", true)

	require.NotEmpty(t, dms)
	assert.LessOrEqual(t, len(dms), 5)
	assert.Equal(t, "Jamie Dimon", dms[0].Name)
	assert.False(t, dms[0].Placeholder)
	assert.Contains(t, dms[0].LinkedInURL, "linkedin.com/in/")
	assert.Contains(t, dms[0].Approach, "regulatory compliance")

	for i := 1; i < len(dms); i++ {
		assert.GreaterOrEqual(t, dms[i].Priority, dms[i-1].Priority)
	}
}

func TestDecisionMakersPlaceholderFallback(t *testing.T) {
	dms := DecisionMakers("Northwind Traders", false)

	require.Len(t, dms, 3)
	for _, dm := range dms {
		assert.True(t, dm.Placeholder)
		assert.Contains(t, dm.Name, "[Identify")
		assert.Empty(t, dm.LinkedInURL)
		assert.NotContains(t, dm.Approach, "regulatory compliance")
		assert.NotEmpty(t, dm.TalkingPoints)
	}
}

func TestDecisionMakersFinancialTalkingPoints(t *testing.T) {
	dms := DecisionMakers("Northwind Traders", true)

	require.NotEmpty(t, dms)
	found := false
	for _, p := range dms[0].TalkingPoints {
		for _, fp := range financialTalkingPoints {
			if p == fp {
				found = true
			}
		}
	}
	assert.True(t, found, "expected financial talking points to be appended")
}

func TestDecisionMakersDoesNotMutateTable(t *testing.T) {
	before := knownDecisionMakers["jpmorgan chase"][0].Approach
	DecisionMakers("JPMorgan Chase", true)
	assert.Equal(t, before, knownDecisionMakers["jpmorgan chase"][0].Approach)
}

func TestGeneratorTemplateFallback(t *testing.T) {
	gen := NewGenerator(nil, testThresholds, testCategories)

	profile := &domain.CompositeProfile{Query: domain.CompanyQuery{Name: "Northwind Traders"}}
	breakdown := &domain.ScoreBreakdown{Total: 72.5, Sector: "general"}

	recs := gen.Generate(context.Background(), profile, breakdown)

	require.NotNil(t, recs)
	assert.False(t, recs.GeneratedByLLM)
	assert.NotEmpty(t, recs.Approach)
	assert.Contains(t, recs.Messaging, "Northwind Traders")
	assert.NotEmpty(t, recs.TalkingPoints)
	assert.NotEmpty(t, recs.NextSteps)
}

func TestGeneratorCategory(t *testing.T) {
	gen := NewGenerator(nil, testThresholds, testCategories)
	assert.Equal(t, "Developing", gen.Category(55))
	assert.Equal(t, "Not Ready", gen.Category(10))
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"approach": "x"}`, `{"approach": "x"}`},
		{"Here you go:\n```json\n{\"approach\": \"x\"}\n```", `{"approach": "x"}`},
		{"no json here", "no json here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractJSON(tt.in))
	}
}
