package jobs

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

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

// Keywords that mark a posting as an AI/ML role when found in the title or
// the opening of the description.
var aimlTitleKeywords = []string{
	"machine learning", "ml engineer", "ai engineer", "data scientist",
	"deep learning", "computer vision", "nlp",
}

var techTitleKeywords = []string{
	"software", "engineer", "developer", "devops", "data", "cloud",
}

// aimlStackKeywords are counted across descriptions to surface the
// technologies a company actually hires for.
var aimlStackKeywords = []string{
	"tensorflow", "pytorch", "scikit-learn", "keras",
	"machine learning", "deep learning", "artificial intelligence",
	"neural network", "computer vision", "natural language processing",
	"nlp", "data science", "predictive modeling", "reinforcement learning",
	"generative ai", "llm", "large language model", "transformers",
	"spark", "databricks", "mlops", "kubeflow", "sagemaker",
	"quantitative modeling", "risk modeling", "portfolio optimization",
	"algorithmic trading", "backtesting", "monte carlo", "credit scoring",
	"fraud detection", "anomaly detection", "aml", "kyc",
}

// Posting is the subset of a job-search API result the analyzer needs.
type Posting struct {
	Title       string
	Employer    string
	Description string
	City        string
	State       string
	PostedAt    string
}

// Client searches a JSearch-style job-postings API (RapidAPI hosted).
type Client struct {
	apiKey     string
	host       string
	pages      int
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(apiKey, host string, timeout time.Duration, pages int) *Client {
	if pages <= 0 {
		pages = 2
	}
	return &Client{
		apiKey:     apiKey,
		host:       host,
		pages:      pages,
		httpClient: &http.Client{Timeout: timeout},
		// RapidAPI tier limit is 100 req/min.
		limiter: rate.NewLimiter(rate.Every(time.Minute/100), 5),
	}
}

// Search fetches recent postings for the company and derives hiring signals.
func (c *Client) Search(ctx context.Context, companyName string) (*domain.JobAnalysis, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNoCredentials
	}

	query := fmt.Sprintf("%s software engineer data scientist machine learning", companyName)

	var all []Posting
	for page := 1; page <= c.pages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		postings, err := c.fetchPage(ctx, query, page)
		if err != nil {
			if len(all) > 0 {
				// Partial results are still usable.
				logger.Warn("Job search page failed, using partial results",
					zap.Int("page", page), zap.Error(err))
				break
			}
			return nil, err
		}
		if len(postings) == 0 {
			break
		}
		all = append(all, postings...)
	}

	analysis := Analyze(companyName, all)

	logger.Debug("Job postings analyzed",
		zap.String("company", companyName),
		zap.Int("total", analysis.TotalJobs),
		zap.Int("ai_ml", analysis.AIMLJobs),
		zap.String("intensity", analysis.HiringIntensity),
	)

	return analysis, nil
}

func (c *Client) fetchPage(ctx context.Context, query string, page int) ([]Posting, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("date_posted", "month")
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("https://%s/search?%s", c.host, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderJobs,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var payload struct {
		Status string `json:"status"`
		Data   []struct {
			Title       string `json:"job_title"`
			Employer    string `json:"employer_name"`
			Description string `json:"job_description"`
			City        string `json:"job_city"`
			State       string `json:"job_state"`
			PostedAt    string `json:"job_posted_at_datetime_utc"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderJobs,
			Message:  fmt.Sprintf("malformed payload: %v", err),
		}
	}
	if payload.Status != "OK" {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderJobs,
			Message:  "unexpected status " + payload.Status,
		}
	}

	postings := make([]Posting, 0, len(payload.Data))
	for _, j := range payload.Data {
		postings = append(postings, Posting{
			Title:       j.Title,
			Employer:    j.Employer,
			Description: j.Description,
			City:        j.City,
			State:       j.State,
			PostedAt:    j.PostedAt,
		})
	}
	return postings, nil
}

// Analyze categorizes postings into AI/ML, general tech and other roles, and
// counts stack keywords across descriptions. Postings whose employer does not
// match the company are dropped; job boards return loose matches.
func Analyze(companyName string, postings []Posting) *domain.JobAnalysis {
	name := strings.ToLower(companyName)

	var companyJobs []Posting
	for _, p := range postings {
		employer := strings.ToLower(p.Employer)
		if employer == "" {
			continue
		}
		if strings.Contains(employer, name) || strings.Contains(name, employer) {
			companyJobs = append(companyJobs, p)
		}
	}

	analysis := &domain.JobAnalysis{
		TotalJobs:       len(companyJobs),
		TopTechnologies: map[string]int{},
	}

	var aimlJobs, techJobs []Posting
	for _, p := range companyJobs {
		title := strings.ToLower(p.Title)
		descHead := strings.ToLower(head(p.Description, 500))

		switch {
		case matchesAny(title, aimlTitleKeywords) || matchesAny(descHead, aimlTitleKeywords):
			aimlJobs = append(aimlJobs, p)
		case matchesAny(title, techTitleKeywords):
			techJobs = append(techJobs, p)
		}

		desc := strings.ToLower(p.Description)
		for _, kw := range aimlStackKeywords {
			if strings.Contains(desc, kw) {
				analysis.TopTechnologies[kw]++
			}
		}
	}

	analysis.AIMLJobs = len(aimlJobs)
	analysis.TechJobs = len(techJobs)
	if analysis.TotalJobs > 0 {
		analysis.AIMLPercentage = round1(float64(analysis.AIMLJobs) / float64(analysis.TotalJobs) * 100)
	}
	analysis.HiringIntensity = hiringIntensity(analysis.AIMLJobs)
	analysis.TechStackSignals = topKeywords(analysis.TopTechnologies, 20)

	for _, p := range append(aimlJobs, techJobs...) {
		if len(analysis.RecentTitles) >= 10 {
			break
		}
		analysis.RecentTitles = append(analysis.RecentTitles, domain.JobTitle{
			Title:    p.Title,
			Location: strings.Trim(fmt.Sprintf("%s, %s", p.City, p.State), ", "),
			Posted:   p.PostedAt,
			IsAIML:   matchesAny(strings.ToLower(p.Title), aimlTitleKeywords),
		})
	}

	return analysis
}

func hiringIntensity(aimlJobs int) string {
	switch {
	case aimlJobs == 0:
		return "none"
	case aimlJobs >= 10:
		return "very_high"
	case aimlJobs >= 5:
		return "high"
	case aimlJobs >= 2:
		return "moderate"
	default:
		return "low"
	}
}

func topKeywords(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func head(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
