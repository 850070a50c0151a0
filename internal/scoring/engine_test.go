package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
)

func liveProfile(name, industry string) *domain.CompositeProfile {
	return &domain.CompositeProfile{
		Query: domain.CompanyQuery{Name: name},
		Company: &domain.CompanyInfo{
			Name: name, Industry: industry,
			EmployeeCount: 50000, MarketCap: 200e9,
			TechTags: []string{"Python", "AWS", "Kubernetes"},
		},
		Jobs: &domain.JobAnalysis{
			TotalJobs: 30, AIMLJobs: 12, TechJobs: 20,
			HiringIntensity:  "very_high",
			TechStackSignals: []string{"python", "tensorflow", "docker"},
			RecentTitles: []domain.JobTitle{
				{Title: "Machine Learning Engineer", IsAIML: true},
				{Title: "Data Engineer"},
			},
		},
		News: &domain.NewsAnalysis{
			TotalArticles: 15, AIRelatedCount: 8,
			Articles: []domain.NewsArticle{
				{Title: "Company expands AI platform", AIRelated: true},
			},
		},
		Website: &domain.WebsiteAnalysis{
			Domain: "example.com", AIMentions: 40,
			VisibleTech:     []string{"react", "aws", "kubernetes"},
			InnovationScore: 70,
			FullText:        "machine learning cloud aws api data lake fraud detection",
		},
		Sources: []domain.ProviderResult{
			{Provider: domain.ProviderEnrichment, Status: domain.StatusLive},
			{Provider: domain.ProviderJobs, Status: domain.StatusLive},
			{Provider: domain.ProviderNews, Status: domain.StatusLive},
			{Provider: domain.ProviderWebsite, Status: domain.StatusLive},
		},
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := func(weights map[string]float64) float64 {
		var s float64
		for _, w := range weights {
			s += w
		}
		return s
	}

	assert.InDelta(t, 1.0, sum(generalWeights), 1e-9)
	assert.InDelta(t, 1.0, sum(financialWeights), 1e-9)
}

func TestScoreStaysInRange(t *testing.T) {
	engine := NewEngine()

	profiles := []*domain.CompositeProfile{
		liveProfile("Acme Robotics", "Technology"),
		liveProfile("JPMorgan Chase", "Banking"),
		{
			Query:   domain.CompanyQuery{Name: "Tiny Shop"},
			Company: &domain.CompanyInfo{Name: "Tiny Shop"},
			Jobs:    &domain.JobAnalysis{},
			News:    &domain.NewsAnalysis{},
			Website: &domain.WebsiteAnalysis{},
		},
	}

	for _, p := range profiles {
		b := engine.Score(p)
		assert.GreaterOrEqual(t, b.Total, 0.0)
		assert.LessOrEqual(t, b.Total, 100.0)
	}
}

func TestComponentWeightsMatchTable(t *testing.T) {
	engine := NewEngine()

	b := engine.Score(liveProfile("Acme Robotics", "Technology"))
	require.Len(t, b.Components, 5)
	for name, c := range b.Components {
		assert.Equal(t, generalWeights[name], c.Weight, name)
	}

	fb := engine.Score(liveProfile("JPMorgan Chase", "Banking"))
	require.Len(t, fb.Components, 6)
	for name, c := range fb.Components {
		assert.Equal(t, financialWeights[name], c.Weight, name)
	}
}

func TestFinancialSectorSelection(t *testing.T) {
	tests := []struct {
		name      string
		industry  string
		financial bool
	}{
		{"JPMorgan Chase", "Banking", true},
		{"Acme Capital", "", true},
		{"Goldman Sachs", "Investment Banking", true},
		{"Acme Robotics", "Technology", false},
		{"Fresh Greens", "Agriculture", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &domain.CompositeProfile{
				Query:   domain.CompanyQuery{Name: tt.name},
				Company: &domain.CompanyInfo{Industry: tt.industry},
			}
			assert.Equal(t, tt.financial, IsFinancial(p))
		})
	}
}

func TestMethodologyFollowsSector(t *testing.T) {
	engine := NewEngine()

	general := engine.Score(liveProfile("Acme Robotics", "Technology"))
	assert.Equal(t, MethodologyGeneral, general.Methodology)
	assert.Equal(t, "general", general.Sector)

	financial := engine.Score(liveProfile("Goldman Sachs", "Investment Banking"))
	assert.Equal(t, MethodologyFinancial, financial.Methodology)
	assert.Equal(t, "financial_services", financial.Sector)
}

func TestConfidenceIsLiveFraction(t *testing.T) {
	engine := NewEngine()

	p := liveProfile("Acme Robotics", "Technology")
	assert.Equal(t, 1.0, engine.Score(p).Confidence)

	p.Sources[1].Status = domain.StatusFallback
	p.Sources[3].Status = domain.StatusFallback
	assert.Equal(t, 0.5, engine.Score(p).Confidence)

	for i := range p.Sources {
		p.Sources[i].Status = domain.StatusFallback
	}
	assert.Equal(t, 0.0, engine.Score(p).Confidence)
}

func TestHiringScoreBands(t *testing.T) {
	tests := []struct {
		aimlJobs int
		want     float64
	}{
		{0, 20}, {3, 40}, {10, 60}, {30, 80}, {50, 80}, {100, 100},
	}
	for _, tt := range tests {
		got := hiringScore(&domain.JobAnalysis{AIMLJobs: tt.aimlJobs})
		assert.Equal(t, tt.want, got, "aiml jobs %d", tt.aimlJobs)
	}
	assert.Equal(t, 30.0, hiringScore(nil))
}

func TestIndustryBenchmarkLookup(t *testing.T) {
	assert.Equal(t, 90.0, industryBenchmark("Technology"))
	assert.Equal(t, 75.0, industryBenchmark("Financial Services"))
	assert.Equal(t, 60.0, industryBenchmark(""))
	assert.Equal(t, 60.0, industryBenchmark("Aerospace"))
}

func TestTopComponentsOrdering(t *testing.T) {
	b := &domain.ScoreBreakdown{
		Components: map[string]domain.Component{
			"low":  {Score: 20},
			"high": {Score: 90},
			"mid":  {Score: 50},
		},
	}
	assert.Equal(t, []string{"high", "mid", "low"}, TopComponents(b))
}
