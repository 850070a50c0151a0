package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, client.InitSchema())
	t.Cleanup(func() { client.Close() })
	return client
}

func testAnalysis(id, company string, score float64, ts time.Time) *domain.Analysis {
	return &domain.Analysis{
		ID:          id,
		CompanyName: company,
		Domain:      "example.com",
		Category:    "Developing",
		Breakdown: &domain.ScoreBreakdown{
			Total:      score,
			Confidence: 0.75,
			Sector:     "general",
		},
		LatencyMS: 1200,
		Timestamp: ts,
	}
}

func TestInsertAndGetAnalysis(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a := testAnalysis("id-1", "Acme Robotics", 62.5, time.Now().UTC())
	require.NoError(t, client.InsertAnalysis(ctx, a))

	got, err := client.GetAnalysis(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Robotics", got.CompanyName)
	assert.Equal(t, 62.5, got.Breakdown.Total)
}

func TestGetAnalysisMissing(t *testing.T) {
	client := newTestClient(t)

	got, err := client.GetAnalysis(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecentAnalysesOrderAndLimit(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		a := testAnalysis(
			string(rune('a'+i)),
			"Company "+string(rune('A'+i)),
			50,
			base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, client.InsertAnalysis(ctx, a))
	}

	records, err := client.RecentAnalyses(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Company E", records[0].CompanyName)
	assert.Equal(t, "Company D", records[1].CompanyName)
}

func TestRecentAnalysesDefaultLimit(t *testing.T) {
	client := newTestClient(t)

	records, err := client.RecentAnalyses(context.Background(), -1)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInsertReport(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	a := testAnalysis("id-1", "Acme Robotics", 62.5, time.Now().UTC())
	require.NoError(t, client.InsertAnalysis(ctx, a))

	err := client.InsertReport(ctx, models.ReportRecord{
		ID:          "report-1",
		AnalysisID:  "id-1",
		CompanyName: "Acme Robotics",
		SizeBytes:   128000,
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(t)
	assert.NoError(t, client.HealthCheck(context.Background()))
}
