package scoring

import (
	"strings"

	"github.com/prospect-intel/backend/internal/domain"
)

// Financial services weight table. Weights sum to 1.0.
var financialWeights = map[string]float64{
	"regulatory_compliance":   0.20,
	"data_governance":         0.20,
	"quant_risk_capabilities": 0.15,
	"aml_kyc_capabilities":    0.15,
	"tech_modernization":      0.15,
	"ai_ml_maturity":          0.15,
}

var regulatoryKeywords = []string{
	"basel iii", "basel iv", "mifid ii", "gdpr", "dodd-frank",
	"eu ai act", "psd2", "solvency ii", "ifrs 9", "cecl",
	"regulatory reporting", "compliance automation", "regtech",
	"supervisory technology", "suptech", "model risk management",
	"sr 11-7", "model validation", "model governance",
	"explainable ai", "fair lending", "disparate impact",
}

var dataGovernanceKeywords = []string{
	"data governance", "data quality", "data lineage", "data catalog",
	"master data management", "mdm", "single source of truth",
	"data lake", "data warehouse", "data mesh", "data fabric",
	"metadata management", "data stewardship", "data privacy",
	"data classification", "data retention", "data archival",
}

var quantRiskKeywords = []string{
	"credit risk", "market risk", "operational risk", "liquidity risk",
	"counterparty risk", "concentration risk", "model risk",
	"value at risk", "expected shortfall", "monte carlo",
	"stress testing", "backtesting", "scenario analysis",
	"sensitivity analysis", "quantitative analysis", "quantitative modeling",
	"risk modeling", "portfolio optimization", "algorithmic trading",
	"quant trading", "derivatives pricing", "option pricing",
	"fixed income analytics",
}

var amlKycKeywords = []string{
	"aml", "anti-money laundering", "kyc", "know your customer",
	"transaction monitoring", "sanctions screening", "pep screening",
	"adverse media", "customer due diligence", "enhanced due diligence",
	"suspicious activity", "currency transaction report", "ofac", "fatf",
	"beneficial ownership", "financial crime",
}

var financialAIRoles = []string{
	"quantitative analyst", "quant developer", "quantitative researcher",
	"quantitative trader", "algo trader", "systematic trader",
	"risk modeler", "credit risk analyst", "market risk analyst",
	"model risk analyst", "model validator", "risk data scientist",
	"aml analyst", "kyc analyst", "compliance analyst",
	"financial crime analyst", "sanctions analyst",
	"financial data scientist", "financial ml engineer",
	"financial data engineer", "ai architect", "mlops engineer",
}

var aiUseCases = []string{
	"fraud detection", "credit scoring", "robo-advisor",
	"chatbot", "customer service ai", "algorithmic trading",
	"risk modeling", "document processing", "kyc automation",
}

func scoreFinancial(profile *domain.CompositeProfile) *domain.ScoreBreakdown {
	text := websiteText(profile)
	jobs := profile.Jobs
	news := profile.News

	jobsLive := profile.Live(domain.ProviderJobs)
	newsLive := profile.Live(domain.ProviderNews)
	siteLive := profile.Live(domain.ProviderWebsite)
	enrichLive := profile.Live(domain.ProviderEnrichment)

	components := map[string]domain.Component{
		"regulatory_compliance": {
			Score:  regulatoryScore(text, jobs, news),
			Weight: financialWeights["regulatory_compliance"],
			Live:   siteLive || jobsLive || newsLive,
		},
		"data_governance": {
			Score:  dataGovernanceScore(text, jobs),
			Weight: financialWeights["data_governance"],
			Live:   siteLive || jobsLive,
		},
		"quant_risk_capabilities": {
			Score:  quantRiskScore(text, jobs),
			Weight: financialWeights["quant_risk_capabilities"],
			Live:   siteLive || jobsLive,
		},
		"aml_kyc_capabilities": {
			Score:  amlKycScore(text, jobs),
			Weight: financialWeights["aml_kyc_capabilities"],
			Live:   siteLive || jobsLive,
		},
		"tech_modernization": {
			Score:  financialTechScore(text, profile.Company),
			Weight: financialWeights["tech_modernization"],
			Live:   siteLive || enrichLive,
		},
		"ai_ml_maturity": {
			Score:  aiMaturityScore(text, jobs, news),
			Weight: financialWeights["ai_ml_maturity"],
			Live:   jobsLive || siteLive || newsLive,
		},
	}

	return &domain.ScoreBreakdown{
		Components:  components,
		Sector:      "financial_services",
		Methodology: MethodologyFinancial,
	}
}

func websiteText(profile *domain.CompositeProfile) string {
	if profile.Website == nil {
		return ""
	}
	return strings.ToLower(profile.Website.FullText)
}

func regulatoryScore(text string, jobs *domain.JobAnalysis, news *domain.NewsAnalysis) float64 {
	score, sources := 0.0, 0

	if text != "" {
		if containsAnyOf(text, "chief risk officer", "cro", "chief compliance") {
			score += 15
		}
		if containsAnyOf(text, "model risk management", "model validation") {
			score += 20
		}
		if n := countKeywords(text, regulatoryKeywords); n > 0 {
			score += capAt(float64(n)*5, 30)
		}
		sources++
	}

	if jobs != nil {
		roles := countTitleMatches(jobs, "compliance", "risk", "regulatory", "audit")
		if roles > 0 {
			score += capAt(float64(roles)*5, 25)
		}
		sources++
	}

	if news != nil {
		for _, a := range headArticles(news, 5) {
			if containsAnyOf(strings.ToLower(a.Title), "compliance", "regulatory", "audit", "governance") {
				score += 5
			}
		}
		sources++
	}

	if sources == 0 {
		score = 35
	}
	return capAt(score, 100)
}

func dataGovernanceScore(text string, jobs *domain.JobAnalysis) float64 {
	score, signals := 0.0, 0

	if text != "" {
		if containsAnyOf(text, "aws", "azure", "gcp", "google cloud") {
			score += 15
		}
		if containsAnyOf(text, "snowflake", "databricks", "palantir") {
			score += 20
		}
		if n := countKeywords(text, dataGovernanceKeywords); n > 0 {
			score += capAt(float64(n)*4, 40)
			signals += n
		}
	}

	if jobs != nil {
		roles := countTitleMatches(jobs, "data", "database", "etl", "analytics")
		if roles > 0 {
			score += capAt(float64(roles)*5, 25)
			signals += roles
		}
	}

	if signals == 0 && score == 0 {
		score = 30
	}
	return capAt(score, 100)
}

func quantRiskScore(text string, jobs *domain.JobAnalysis) float64 {
	score, signals := 0.0, 0

	if jobs != nil {
		quantRoles := 0
		for _, job := range jobs.RecentTitles {
			title := strings.ToLower(job.Title)
			for _, role := range financialAIRoles {
				if strings.Contains(title, role) {
					quantRoles++
					break
				}
			}
		}
		if quantRoles > 0 {
			score += capAt(float64(quantRoles)*10, 40)
			signals += quantRoles
		}

		tools := 0
		for _, tool := range []string{"python", "r", "matlab", "c++", "java", "scala"} {
			for _, signal := range jobs.TechStackSignals {
				if strings.Contains(strings.ToLower(signal), tool) {
					tools++
					break
				}
			}
		}
		if tools > 0 {
			score += capAt(float64(tools)*5, 20)
			signals += tools
		}
	}

	if text != "" {
		if n := countKeywords(text, quantRiskKeywords); n > 0 {
			score += capAt(float64(n)*3, 40)
			signals += n
		}
	}

	if signals == 0 {
		score = 25
	}
	return capAt(score, 100)
}

func amlKycScore(text string, jobs *domain.JobAnalysis) float64 {
	score, found := 0.0, 0

	if text != "" {
		if n := countKeywords(text, amlKycKeywords); n > 0 {
			score += capAt(float64(n)*3, 40)
			found += n
		}
		if containsAnyOf(text, "actimize", "verafin", "fenergo", "world-check") {
			score += 15
		}
	}

	if jobs != nil {
		roles := countTitleMatches(jobs, "aml", "kyc", "financial crime", "sanctions")
		if roles > 0 {
			score += capAt(float64(roles)*10, 30)
			found += roles
		}
	}

	if found == 0 {
		score = 30
	}
	return capAt(score, 100)
}

func financialTechScore(text string, company *domain.CompanyInfo) float64 {
	score, hasSignals := 0.0, false

	if text != "" {
		if containsAnyOf(text, "mambu", "thought machine", "temenos") {
			score += 25
			hasSignals = true
		}
		if containsAnyOf(text, "api", "microservices", "rest", "graphql") {
			score += 20
			hasSignals = true
		}
		if containsAnyOf(text, "cloud", "aws", "azure", "gcp") {
			score += 20
			hasSignals = true
		}
		if containsAnyOf(text, "real-time", "streaming", "kafka", "event-driven") {
			score += 15
			hasSignals = true
		}
	}

	if company != nil {
		for _, tech := range []string{"kubernetes", "docker", "react", "node.js", "python"} {
			for _, tag := range company.TechTags {
				if strings.Contains(strings.ToLower(tag), tech) {
					score += 5
					hasSignals = true
					break
				}
			}
		}
	}

	if !hasSignals {
		score = 40
	}
	return capAt(score, 100)
}

func aiMaturityScore(text string, jobs *domain.JobAnalysis, news *domain.NewsAnalysis) float64 {
	score, initiatives := 0.0, 0

	if jobs != nil {
		switch n := jobs.AIMLJobs; {
		case n > 10:
			score += 30
			initiatives += n
		case n > 5:
			score += 20
			initiatives += n
		case n > 0:
			score += 10
			initiatives += n
		}
	}

	if text != "" {
		for _, useCase := range aiUseCases {
			if strings.Contains(text, useCase) {
				score += 5
			}
		}
		if containsAnyOf(text, "ai governance", "ai ethics", "responsible ai") {
			score += 15
		}
		if containsAnyOf(text, "ai committee", "ai steering") {
			score += 10
		}
	}

	if news != nil {
		for _, a := range headArticles(news, 5) {
			if a.AIRelated {
				initiatives++
				score += 3
			}
		}
	}

	if initiatives == 0 && score == 0 {
		score = 20
	}
	return capAt(score, 100)
}

func containsAnyOf(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func countKeywords(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

func countTitleMatches(jobs *domain.JobAnalysis, terms ...string) int {
	n := 0
	for _, job := range jobs.RecentTitles {
		title := strings.ToLower(job.Title)
		if containsAnyOf(title, terms...) {
			n++
		}
	}
	return n
}

func headArticles(news *domain.NewsAnalysis, limit int) []domain.NewsArticle {
	if len(news.Articles) <= limit {
		return news.Articles
	}
	return news.Articles[:limit]
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
