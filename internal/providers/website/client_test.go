package website

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
)

const samplePage = `<!DOCTYPE html>
<html><head><title>Acme</title><style>body{}</style></head>
<body>
<h1>Machine Learning at Acme</h1>
<h2>Our Platform</h2>
<p>We build with kubernetes and tensorflow. Artificial intelligence drives
our fraud detection products. Machine learning is core to everything.</p>
<a href="/technology">Technology</a>
<a href="/engineering/blog">Engineering Blog</a>
<a href="https://twitter.com/acme">Twitter</a>
<script>console.log("machine learning")</script>
</body></html>`

func testClient(t *testing.T, handler http.Handler) (*Client, string) {
	t.Helper()
	server := httptest.NewTLSServer(handler)
	t.Cleanup(server.Close)

	client := &Client{httpClient: server.Client()}
	return client, strings.TrimPrefix(server.URL, "https://")
}

func TestAnalyze(t *testing.T) {
	client, host := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))

	analysis, err := client.Analyze(context.Background(), host)
	require.NoError(t, err)

	assert.Equal(t, host, analysis.Domain)
	assert.Greater(t, analysis.AIMentions, 0)
	assert.Contains(t, analysis.VisibleTech, "kubernetes")
	assert.Contains(t, analysis.VisibleTech, "tensorflow")
	assert.Contains(t, analysis.TechPages, "/technology")
	assert.NotContains(t, analysis.TechPages, "https://twitter.com/acme")
	require.NotEmpty(t, analysis.KeyInitiatives)
	assert.Equal(t, "Machine Learning at Acme", analysis.KeyInitiatives[0])
	assert.Greater(t, analysis.InnovationScore, 0.0)

	// Script content is stripped before counting mentions.
	assert.NotContains(t, analysis.FullText, "console.log")
}

func TestAnalyzeHTTPError(t *testing.T) {
	client, host := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := client.Analyze(context.Background(), host)
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusForbidden, provErr.StatusCode)
}

func TestInnovationScoreBands(t *testing.T) {
	empty := &domain.WebsiteAnalysis{}
	assert.Equal(t, 0.0, innovationScore(empty))

	maxed := &domain.WebsiteAnalysis{
		AIMentions:     100,
		TechPages:      []string{"a", "b", "c", "d", "e"},
		KeyInitiatives: []string{"a", "b", "c", "d", "e"},
		VisibleTech:    []string{"a", "b", "c", "d", "e"},
	}
	assert.Equal(t, 100.0, innovationScore(maxed))
}
