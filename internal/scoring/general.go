package scoring

import (
	"strings"

	"github.com/prospect-intel/backend/internal/domain"
)

// General weight table. Weights sum to 1.0.
var generalWeights = map[string]float64{
	"tech_hiring":        0.25,
	"ai_mentions":        0.25,
	"company_growth":     0.20,
	"industry_adoption":  0.15,
	"tech_modernization": 0.15,
}

// Industry AI adoption benchmarks, 0-100.
var industryBenchmarks = map[string]float64{
	"financial_services": 75,
	"technology":         90,
	"healthcare":         65,
	"retail":             60,
	"manufacturing":      55,
	"energy":             50,
	"default":            60,
}

var modernTech = []string{
	"cloud", "kubernetes", "docker", "react", "python",
	"tensorflow", "pytorch", "aws", "azure", "gcp",
}

func scoreGeneral(profile *domain.CompositeProfile) *domain.ScoreBreakdown {
	jobsLive := profile.Live(domain.ProviderJobs)
	newsLive := profile.Live(domain.ProviderNews)
	siteLive := profile.Live(domain.ProviderWebsite)
	enrichLive := profile.Live(domain.ProviderEnrichment)

	components := map[string]domain.Component{
		"tech_hiring": {
			Score:  hiringScore(profile.Jobs),
			Weight: generalWeights["tech_hiring"],
			Live:   jobsLive,
		},
		"ai_mentions": {
			Score:  mentionsScore(profile.Website, profile.News),
			Weight: generalWeights["ai_mentions"],
			Live:   siteLive || newsLive,
		},
		"company_growth": {
			Score:  growthScore(profile.Company),
			Weight: generalWeights["company_growth"],
			Live:   enrichLive,
		},
		"industry_adoption": {
			Score:  industryBenchmark(profile.Company.Industry),
			Weight: generalWeights["industry_adoption"],
			Live:   enrichLive,
		},
		"tech_modernization": {
			Score:  modernizationScore(profile.Website, profile.Jobs),
			Weight: generalWeights["tech_modernization"],
			Live:   siteLive || jobsLive,
		},
	}

	return &domain.ScoreBreakdown{
		Components:  components,
		Sector:      "general",
		Methodology: MethodologyGeneral,
	}
}

func hiringScore(jobs *domain.JobAnalysis) float64 {
	if jobs == nil {
		return 30
	}
	switch n := jobs.AIMLJobs; {
	case n == 0:
		return 20
	case n < 5:
		return 40
	case n < 20:
		return 60
	case n < 50:
		return 80
	default:
		return clamp(80 + float64(n-50)*0.4)
	}
}

func mentionsScore(site *domain.WebsiteAnalysis, news *domain.NewsAnalysis) float64 {
	var siteMentions, newsArticles int
	if site != nil {
		siteMentions = site.AIMentions
	}
	if news != nil {
		newsArticles = news.AIRelatedCount
	}

	var siteScore float64
	switch {
	case siteMentions == 0:
		siteScore = 10
	case siteMentions < 10:
		siteScore = 30
	case siteMentions < 30:
		siteScore = 50
	case siteMentions < 50:
		siteScore = 70
	default:
		siteScore = clamp(70 + float64(siteMentions)*0.6)
	}

	var newsScore float64
	switch {
	case newsArticles == 0:
		newsScore = 10
	case newsArticles < 3:
		newsScore = 30
	case newsArticles < 7:
		newsScore = 60
	case newsArticles < 12:
		newsScore = 80
	default:
		newsScore = clamp(80 + float64(newsArticles)*1.5)
	}

	return siteScore*0.6 + newsScore*0.4
}

func growthScore(company *domain.CompanyInfo) float64 {
	employees, marketCap := 100, 0.0
	if company != nil {
		if company.EmployeeCount > 0 {
			employees = company.EmployeeCount
		}
		marketCap = company.MarketCap
	}

	var sizeScore float64
	switch {
	case employees < 100:
		sizeScore = 30
	case employees < 1000:
		sizeScore = 50
	case employees < 10000:
		sizeScore = 70
	default:
		sizeScore = 85
	}

	var capScore float64
	switch {
	case marketCap > 100e9:
		capScore = 90
	case marketCap > 10e9:
		capScore = 70
	case marketCap > 1e9:
		capScore = 50
	default:
		capScore = 30
	}

	return (sizeScore + capScore) / 2
}

func industryBenchmark(industry string) float64 {
	lower := strings.ToLower(strings.TrimSpace(industry))
	if lower == "" {
		return industryBenchmarks["default"]
	}
	for key, score := range industryBenchmarks {
		if key == "default" {
			continue
		}
		normalized := strings.ReplaceAll(key, "_", " ")
		if strings.Contains(lower, normalized) || strings.Contains(normalized, lower) {
			return score
		}
	}
	return industryBenchmarks["default"]
}

func modernizationScore(site *domain.WebsiteAnalysis, jobs *domain.JobAnalysis) float64 {
	var stack []string
	innovation := 30.0
	if site != nil {
		stack = append(stack, site.VisibleTech...)
		if site.InnovationScore > 0 {
			innovation = site.InnovationScore
		}
	}
	if jobs != nil {
		stack = append(stack, jobs.TechStackSignals...)
	}

	count := 0
	for _, tech := range stack {
		lower := strings.ToLower(tech)
		for _, modern := range modernTech {
			if strings.Contains(lower, modern) {
				count++
				break
			}
		}
	}

	var techScore float64
	switch {
	case count == 0:
		techScore = 20
	case count < 3:
		techScore = 40
	case count < 5:
		techScore = 60
	case count < 8:
		techScore = 80
	default:
		techScore = 95
	}

	return techScore*0.6 + innovation*0.4
}
