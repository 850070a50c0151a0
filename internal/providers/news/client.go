package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	prose "github.com/jdkato/prose/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

var aiKeywords = []string{
	"artificial intelligence", "machine learning", "deep learning",
	"neural network", "data science", "generative ai", "llm",
	"large language model", "automation", "predictive analytics",
	"digital transformation", "computer vision", "nlp",
	"natural language processing", "algorithm",
}

var financialSources = []string{
	"financial times", "wall street journal", "bloomberg", "reuters",
	"american banker", "finextra", "risk.net", "institutional investor",
}

// Client searches a NewsAPI-style endpoint for recent company coverage.
type Client struct {
	apiKey      string
	baseURL     string
	daysBack    int
	maxArticles int
	httpClient  *http.Client
	limiter     *rate.Limiter
}

func NewClient(apiKey, baseURL string, timeout time.Duration, daysBack, maxArticles int) *Client {
	if daysBack <= 0 {
		daysBack = 30
	}
	if maxArticles <= 0 {
		maxArticles = 50
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		daysBack:    daysBack,
		maxArticles: maxArticles,
		httpClient:  &http.Client{Timeout: timeout},
		limiter:     rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Search returns recent articles mentioning the company, flagged for
// AI/tech relevance and annotated with extracted entities.
func (c *Client) Search(ctx context.Context, companyName string) (*domain.NewsAnalysis, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNoCredentials
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	from := time.Now().AddDate(0, 0, -c.daysBack).Format("2006-01-02")
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%q", companyName))
	params.Set("from", from)
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", c.maxArticles))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/everything?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderNews,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var payload struct {
		Status   string `json:"status"`
		Articles []struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderNews,
			Message:  fmt.Sprintf("malformed payload: %v", err),
		}
	}
	if payload.Status != "ok" {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderNews,
			Message:  "unexpected status " + payload.Status,
		}
	}

	raw := make([]rawArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		raw = append(raw, rawArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	analysis := Analyze(companyName, raw)

	logger.Debug("News collected",
		zap.String("company", companyName),
		zap.Int("articles", analysis.TotalArticles),
		zap.Int("ai_related", analysis.AIRelatedCount),
	)

	return analysis, nil
}

type rawArticle struct {
	Title       string
	Description string
	URL         string
	Source      string
	PublishedAt time.Time
}

// Analyze classifies raw articles and extracts named entities from headlines.
func Analyze(companyName string, articles []rawArticle) *domain.NewsAnalysis {
	analysis := &domain.NewsAnalysis{
		TotalArticles: len(articles),
	}

	var headlines strings.Builder
	for _, a := range articles {
		text := strings.ToLower(a.Title + " " + a.Description)
		aiRelated := containsAny(text, aiKeywords)
		if aiRelated {
			analysis.AIRelatedCount++
		}
		if containsAny(strings.ToLower(a.Source), financialSources) {
			analysis.FinancialSource++
		}

		if len(analysis.Articles) < 20 {
			analysis.Articles = append(analysis.Articles, domain.NewsArticle{
				Title:       a.Title,
				Source:      a.Source,
				URL:         a.URL,
				PublishedAt: a.PublishedAt,
				AIRelated:   aiRelated,
			})
		}
		headlines.WriteString(a.Title)
		headlines.WriteString(". ")
	}

	analysis.KeyEntities = extractEntities(headlines.String(), companyName)

	return analysis
}

// extractEntities pulls organization and person names out of headline text.
// The company's own name is dropped; it appears in every headline.
func extractEntities(text, companyName string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		logger.Warn("Entity extraction failed", zap.Error(err))
		return nil
	}

	self := strings.ToLower(companyName)
	counts := map[string]int{}
	for _, ent := range doc.Entities() {
		if ent.Label != "GPE" && ent.Label != "PERSON" && ent.Label != "ORGANIZATION" {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if name == "" || strings.Contains(self, strings.ToLower(name)) {
			continue
		}
		counts[name]++
	}

	entities := make([]string, 0, len(counts))
	for name := range counts {
		entities = append(entities, name)
	}
	sort.Slice(entities, func(i, j int) bool {
		if counts[entities[i]] != counts[entities[j]] {
			return counts[entities[i]] > counts[entities[j]]
		}
		return entities[i] < entities[j]
	})

	if len(entities) > 10 {
		entities = entities[:10]
	}
	return entities
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
