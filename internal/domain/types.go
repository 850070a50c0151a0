package domain

import (
	"errors"
	"fmt"
	"time"
)

// Provider identifies an external data source feeding the composite profile.
type Provider string

const (
	ProviderEnrichment Provider = "enrichment"
	ProviderNews       Provider = "news"
	ProviderJobs       Provider = "jobs"
	ProviderWebsite    Provider = "website"
	ProviderLinkedIn   Provider = "linkedin"
)

// ResultStatus records where a provider's data came from.
type ResultStatus string

const (
	StatusLive     ResultStatus = "live"
	StatusFallback ResultStatus = "fallback"
	StatusError    ResultStatus = "error"
)

// ErrEmptyCompanyName is returned before any provider call is issued.
var ErrEmptyCompanyName = errors.New("company name is required")

// ProviderError wraps a non-2xx or malformed response from an external API.
type ProviderError struct {
	Provider   Provider
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s provider: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s provider: %s", e.Provider, e.Message)
}

// ErrNoCredentials signals a provider configured without an API key; the
// fallback resolver substitutes static data in that case.
var ErrNoCredentials = errors.New("no API credentials configured")

// CompanyQuery is the inbound lookup request.
type CompanyQuery struct {
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
}

// CompanyInfo is the enrichment provider's view of a company.
type CompanyInfo struct {
	Name          string   `json:"name"`
	Domain        string   `json:"domain"`
	Industry      string   `json:"industry"`
	EmployeeCount int      `json:"employee_count"`
	FoundedYear   int      `json:"founded_year,omitempty"`
	Headquarters  string   `json:"headquarters,omitempty"`
	Description   string   `json:"description,omitempty"`
	MarketCap     float64  `json:"market_cap,omitempty"`
	TechTags      []string `json:"tech_tags,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// JobTitle is a single posting retained for display and keyword heuristics.
type JobTitle struct {
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Posted   string `json:"posted,omitempty"`
	IsAIML   bool   `json:"is_ai_ml"`
}

// JobAnalysis summarizes a company's recent job postings.
type JobAnalysis struct {
	TotalJobs        int            `json:"total_jobs_found"`
	AIMLJobs         int            `json:"ai_ml_jobs_count"`
	TechJobs         int            `json:"tech_jobs_count"`
	AIMLPercentage   float64        `json:"ai_ml_percentage"`
	HiringIntensity  string         `json:"ai_hiring_intensity"`
	TopTechnologies  map[string]int `json:"top_ai_technologies,omitempty"`
	RecentTitles     []JobTitle     `json:"recent_job_titles,omitempty"`
	TechStackSignals []string       `json:"tech_stack_signals,omitempty"`
}

// NewsArticle is a single headline retained for scoring heuristics.
type NewsArticle struct {
	Title       string    `json:"title"`
	Source      string    `json:"source,omitempty"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
	AIRelated   bool      `json:"ai_related"`
}

// NewsAnalysis summarizes recent media coverage.
type NewsAnalysis struct {
	TotalArticles   int           `json:"total_articles"`
	AIRelatedCount  int           `json:"ai_related_articles"`
	FinancialSource int           `json:"financial_source_articles,omitempty"`
	Articles        []NewsArticle `json:"articles,omitempty"`
	KeyEntities     []string      `json:"key_entities,omitempty"`
}

// WebsiteAnalysis summarizes technology signals scraped from the company site.
type WebsiteAnalysis struct {
	Domain          string   `json:"domain"`
	AIMentions      int      `json:"ai_mentions_count"`
	TechPages       []string `json:"tech_pages,omitempty"`
	KeyInitiatives  []string `json:"key_initiatives,omitempty"`
	VisibleTech     []string `json:"tech_stack_visible,omitempty"`
	InnovationScore float64  `json:"innovation_score"`
	FullText        string   `json:"-"`
}

// ProviderResult pairs a provider with the origin of its data for one request.
type ProviderResult struct {
	Provider Provider     `json:"provider"`
	Status   ResultStatus `json:"status"`
	Err      string       `json:"error,omitempty"`
}

// CompositeProfile merges all provider payloads. After fallback resolution
// every section is populated, live or not.
type CompositeProfile struct {
	Query    CompanyQuery     `json:"query"`
	Company  *CompanyInfo     `json:"company_info"`
	Jobs     *JobAnalysis     `json:"job_analysis"`
	News     *NewsAnalysis    `json:"news_analysis"`
	Website  *WebsiteAnalysis `json:"website_analysis"`
	Sources  []ProviderResult `json:"sources"`
}

// Live reports whether the named provider returned live data.
func (p *CompositeProfile) Live(provider Provider) bool {
	for _, s := range p.Sources {
		if s.Provider == provider {
			return s.Status == StatusLive
		}
	}
	return false
}

// Component is one weighted element of the readiness score.
type Component struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Live   bool    `json:"live"`
}

// ScoreBreakdown is the scoring engine's output. Weights sum to 1.0 and
// Total is clamped to [0,100].
type ScoreBreakdown struct {
	Components  map[string]Component `json:"components"`
	Total       float64              `json:"total_score"`
	Confidence  float64              `json:"confidence"`
	Sector      string               `json:"sector"`
	Methodology string               `json:"methodology"`
}

// DecisionMaker is a sales-targeting contact from the static lookup table.
type DecisionMaker struct {
	Name          string   `json:"name"`
	Title         string   `json:"title"`
	LinkedInURL   string   `json:"linkedin_url,omitempty"`
	Priority      int      `json:"priority"`
	Role          string   `json:"role,omitempty"`
	Approach      string   `json:"approach,omitempty"`
	TalkingPoints []string `json:"talking_points,omitempty"`
	Placeholder   bool     `json:"placeholder,omitempty"`
}

// Recommendations are the sales talking points derived from the score.
type Recommendations struct {
	Approach       string   `json:"approach"`
	Messaging      string   `json:"messaging"`
	TalkingPoints  []string `json:"talking_points"`
	NextSteps      []string `json:"next_steps,omitempty"`
	GeneratedByLLM bool     `json:"generated_by_llm"`
}

// Analysis is the full per-request result returned by /analyze and cached
// under the normalized company name.
type Analysis struct {
	ID              string            `json:"id"`
	CompanyName     string            `json:"company_name"`
	Domain          string            `json:"domain,omitempty"`
	Profile         *CompositeProfile `json:"company_data"`
	Breakdown       *ScoreBreakdown   `json:"readiness_score"`
	Category        string            `json:"readiness_category"`
	Recommendations *Recommendations  `json:"recommendations"`
	DecisionMakers  []DecisionMaker   `json:"decision_makers"`
	LatencyMS       int               `json:"latency_ms"`
	Cached          bool              `json:"cached"`
	Timestamp       time.Time         `json:"timestamp"`
}
