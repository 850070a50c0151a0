package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeClassifiesArticles(t *testing.T) {
	articles := []rawArticle{
		{Title: "Acme launches machine learning platform", Source: "TechCrunch"},
		{Title: "Acme quarterly earnings beat estimates", Source: "Bloomberg"},
		{Title: "Acme opens new office", Description: "The artificial intelligence push continues", Source: "Reuters"},
	}

	analysis := Analyze("Acme", articles)

	assert.Equal(t, 3, analysis.TotalArticles)
	assert.Equal(t, 2, analysis.AIRelatedCount)
	assert.Equal(t, 2, analysis.FinancialSource)

	require.Len(t, analysis.Articles, 3)
	assert.True(t, analysis.Articles[0].AIRelated)
	assert.False(t, analysis.Articles[1].AIRelated)
	assert.True(t, analysis.Articles[2].AIRelated)
}

func TestAnalyzeCapsStoredArticles(t *testing.T) {
	articles := make([]rawArticle, 30)
	for i := range articles {
		articles[i] = rawArticle{
			Title:       "Acme expands operations",
			Source:      "Newswire",
			PublishedAt: time.Now(),
		}
	}

	analysis := Analyze("Acme", articles)

	assert.Equal(t, 30, analysis.TotalArticles)
	assert.Len(t, analysis.Articles, 20)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	analysis := Analyze("Acme", nil)

	assert.Equal(t, 0, analysis.TotalArticles)
	assert.Equal(t, 0, analysis.AIRelatedCount)
	assert.Empty(t, analysis.Articles)
}

func TestContainsAny(t *testing.T) {
	assert.True(t, containsAny("new machine learning lab", aiKeywords))
	assert.False(t, containsAny("new cafeteria menu", aiKeywords))
	assert.False(t, containsAny("", aiKeywords))
}
