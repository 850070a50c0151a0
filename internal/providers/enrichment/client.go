package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/retry"
)

// Client fetches company firmographics from a Clearbit-style enrichment API.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryConfig retry.Config
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// Enrichment tier allows 600 req/min; stay under it.
		limiter: rate.NewLimiter(rate.Every(time.Minute/600), 10),
		retryConfig: retry.Config{
			MaxAttempts:  2,
			InitialDelay: 300 * time.Millisecond,
			Logger:       logger.GetLogger(),
		},
	}
}

// Enrich looks up a company by domain and maps the response into CompanyInfo.
func (c *Client) Enrich(ctx context.Context, query domain.CompanyQuery) (*domain.CompanyInfo, error) {
	if c.apiKey == "" {
		return nil, domain.ErrNoCredentials
	}

	companyDomain := normalizeDomain(query.Domain)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	info, err := retry.DoWithResult(ctx, c.retryConfig, func() (*domain.CompanyInfo, error) {
		return c.fetch(ctx, companyDomain)
	})
	if err != nil {
		return nil, err
	}

	if info.Name == "" {
		info.Name = query.Name
	}
	logger.Debug("Company enriched",
		zap.String("domain", companyDomain),
		zap.String("industry", info.Industry),
		zap.Int("employees", info.EmployeeCount),
	)

	return info, nil
}

func (c *Client) fetch(ctx context.Context, companyDomain string) (*domain.CompanyInfo, error) {
	params := url.Values{}
	params.Set("domain", companyDomain)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/find?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderEnrichment,
			StatusCode: resp.StatusCode,
			Message:    "company not found for domain " + companyDomain,
		}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderEnrichment,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	var payload struct {
		Name        string `json:"name"`
		Domain      string `json:"domain"`
		Description string `json:"description"`
		FoundedYear int    `json:"foundedYear"`
		Category    struct {
			Industry string `json:"industry"`
		} `json:"category"`
		Metrics struct {
			Employees    int     `json:"employees"`
			MarketCap    float64 `json:"marketCap"`
		} `json:"metrics"`
		Location struct {
			City    string `json:"city"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"location"`
		Tech []string `json:"tech"`
		Tags []string `json:"tags"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.ProviderError{
			Provider: domain.ProviderEnrichment,
			Message:  fmt.Sprintf("malformed payload: %v", err),
		}
	}

	hq := strings.TrimSpace(strings.Trim(fmt.Sprintf("%s, %s %s",
		payload.Location.City, payload.Location.State, payload.Location.Country), ", "))

	return &domain.CompanyInfo{
		Name:          payload.Name,
		Domain:        payload.Domain,
		Industry:      payload.Category.Industry,
		EmployeeCount: payload.Metrics.Employees,
		FoundedYear:   validFoundedYear(payload.FoundedYear),
		Headquarters:  hq,
		Description:   payload.Description,
		MarketCap:     payload.Metrics.MarketCap,
		TechTags:      payload.Tech,
		Tags:          payload.Tags,
	}, nil
}

func normalizeDomain(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

func validFoundedYear(year int) int {
	if year < 1800 || year > time.Now().Year() {
		return 0
	}
	return year
}
