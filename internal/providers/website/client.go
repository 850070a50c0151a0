package website

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

var aiKeywords = []string{
	"artificial intelligence", "machine learning", "deep learning",
	"neural network", "predictive analytics", "natural language processing",
	"computer vision", "data science", "generative ai", "automation",
	"chatbot", "digital transformation",
}

var modernTech = []string{
	"kubernetes", "docker", "react", "python", "tensorflow", "pytorch",
	"aws", "azure", "gcp", "snowflake", "databricks", "kafka", "graphql",
}

var techPathHints = []string{
	"technology", "innovation", "ai", "artificial-intelligence",
	"engineering", "digital", "data",
}

// Client scrapes a company's public site for technology signals.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
	}
}

// Analyze fetches the landing page and derives AI-mention and tech-stack
// signals. It is a shallow single-page scrape; link discovery is limited to
// hrefs that look like technology pages.
func (c *Client) Analyze(ctx context.Context, companyDomain string) (*domain.WebsiteAnalysis, error) {
	doc, err := c.fetch(ctx, "https://"+companyDomain)
	if err != nil {
		return nil, err
	}

	doc.Find("script, style, noscript, svg").Remove()
	text := strings.ToLower(strings.Join(strings.Fields(doc.Find("body").Text()), " "))
	if len(text) > 50000 {
		text = text[:50000]
	}

	analysis := &domain.WebsiteAnalysis{
		Domain:   companyDomain,
		FullText: text,
	}

	for _, kw := range aiKeywords {
		analysis.AIMentions += strings.Count(text, kw)
	}

	seenTech := map[string]bool{}
	for _, tech := range modernTech {
		if strings.Contains(text, tech) && !seenTech[tech] {
			seenTech[tech] = true
			analysis.VisibleTech = append(analysis.VisibleTech, tech)
		}
	}

	seenPaths := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "/") || len(analysis.TechPages) >= 10 {
			return
		}
		lower := strings.ToLower(href)
		for _, hint := range techPathHints {
			if strings.Contains(lower, hint) && !seenPaths[href] {
				seenPaths[href] = true
				analysis.TechPages = append(analysis.TechPages, href)
				break
			}
		}
	})

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		heading := strings.TrimSpace(s.Text())
		lower := strings.ToLower(heading)
		if heading == "" || len(analysis.KeyInitiatives) >= 8 {
			return
		}
		for _, kw := range aiKeywords {
			if strings.Contains(lower, kw) {
				analysis.KeyInitiatives = append(analysis.KeyInitiatives, heading)
				break
			}
		}
	})

	analysis.InnovationScore = innovationScore(analysis)

	logger.Debug("Website analyzed",
		zap.String("domain", companyDomain),
		zap.Int("ai_mentions", analysis.AIMentions),
		zap.Int("visible_tech", len(analysis.VisibleTech)),
	)

	return analysis, nil
}

func (c *Client) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("website request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderWebsite,
			StatusCode: resp.StatusCode,
			Message:    "fetching " + url,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderWebsite,
			Message:  fmt.Sprintf("failed to parse HTML: %v", err),
		}
	}
	return doc, nil
}

// innovationScore is a banded heuristic over the scraped signals, 0-100.
func innovationScore(a *domain.WebsiteAnalysis) float64 {
	score := 0.0
	score += minF(30, float64(a.AIMentions)*0.5)
	score += minF(20, float64(len(a.TechPages))*5)
	score += minF(30, float64(len(a.KeyInitiatives))*6)
	score += minF(20, float64(len(a.VisibleTech))*4)
	return score
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
