package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFiltersByEmployer(t *testing.T) {
	postings := []Posting{
		{Title: "Software Engineer", Employer: "Acme Robotics"},
		{Title: "Software Engineer", Employer: "Acme Robotics Staffing"},
		{Title: "Software Engineer", Employer: "Unrelated Recruiters"},
		{Title: "Software Engineer", Employer: ""},
	}

	analysis := Analyze("Acme Robotics", postings)

	assert.Equal(t, 2, analysis.TotalJobs)
}

func TestAnalyzeCategorizesRoles(t *testing.T) {
	postings := []Posting{
		{Title: "Machine Learning Engineer", Employer: "Acme"},
		{Title: "Data Scientist", Employer: "Acme"},
		{Title: "Senior Software Developer", Employer: "Acme"},
		{Title: "Accountant", Employer: "Acme"},
		{Title: "Product Analyst", Employer: "Acme", Description: "Experience with computer vision pipelines"},
	}

	analysis := Analyze("Acme", postings)

	assert.Equal(t, 5, analysis.TotalJobs)
	assert.Equal(t, 3, analysis.AIMLJobs)
	assert.Equal(t, 1, analysis.TechJobs)
	assert.Equal(t, 60.0, analysis.AIMLPercentage)
}

func TestAnalyzeCountsStackKeywords(t *testing.T) {
	postings := []Posting{
		{Title: "ML Engineer", Employer: "Acme", Description: "We use tensorflow and pytorch in production"},
		{Title: "Data Engineer", Employer: "Acme", Description: "Spark and databricks, some tensorflow"},
	}

	analysis := Analyze("Acme", postings)

	assert.Equal(t, 2, analysis.TopTechnologies["tensorflow"])
	assert.Equal(t, 1, analysis.TopTechnologies["pytorch"])
	assert.Contains(t, analysis.TechStackSignals, "tensorflow")
}

func TestAnalyzeRecentTitles(t *testing.T) {
	postings := []Posting{
		{Title: "ML Engineer", Employer: "Acme", City: "Austin", State: "TX"},
		{Title: "Backend Developer", Employer: "Acme", City: "Remote"},
	}

	analysis := Analyze("Acme", postings)

	require.Len(t, analysis.RecentTitles, 2)
	assert.True(t, analysis.RecentTitles[0].IsAIML)
	assert.Equal(t, "Austin, TX", analysis.RecentTitles[0].Location)
	assert.False(t, analysis.RecentTitles[1].IsAIML)
	assert.Equal(t, "Remote", analysis.RecentTitles[1].Location)
}

func TestHiringIntensityBands(t *testing.T) {
	tests := []struct {
		aimlJobs int
		want     string
	}{
		{0, "none"},
		{1, "low"},
		{2, "moderate"},
		{4, "moderate"},
		{5, "high"},
		{9, "high"},
		{10, "very_high"},
		{40, "very_high"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, hiringIntensity(tt.aimlJobs), "aiml jobs %d", tt.aimlJobs)
	}
}

func TestAnalyzeEmptyPostings(t *testing.T) {
	analysis := Analyze("Acme", nil)

	assert.Equal(t, 0, analysis.TotalJobs)
	assert.Equal(t, "none", analysis.HiringIntensity)
	assert.Equal(t, 0.0, analysis.AIMLPercentage)
}
