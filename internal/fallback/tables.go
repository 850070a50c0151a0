package fallback

import "github.com/prospect-intel/backend/internal/domain"

// Curated placeholder records for companies the demo is usually run against.
// Keys are normalized company names (pkg/namekey). Values are deliberately
// static so repeated degraded runs stay deterministic.
var companyTable = map[string]domain.CompanyInfo{
	"jpmorgan chase": {
		Name: "JPMorgan Chase", Domain: "jpmorganchase.com",
		Industry: "Banking", EmployeeCount: 290000, FoundedYear: 1799,
		Headquarters: "New York, NY US", MarketCap: 550e9,
		TechTags: []string{"Java", "Python", "Cloud", "Kafka"},
		Tags:     []string{"Banking", "Financial Services"},
	},
	"goldman sachs": {
		Name: "Goldman Sachs", Domain: "goldmansachs.com",
		Industry: "Investment Banking", EmployeeCount: 45000, FoundedYear: 1869,
		Headquarters: "New York, NY US", MarketCap: 140e9,
		TechTags: []string{"Python", "React", "AWS", "Kubernetes"},
		Tags:     []string{"Investment Banking", "Financial Services"},
	},
	"blackrock": {
		Name: "BlackRock", Domain: "blackrock.com",
		Industry: "Asset Management", EmployeeCount: 20000, FoundedYear: 1988,
		Headquarters: "New York, NY US", MarketCap: 120e9,
		TechTags: []string{"Python", "Azure", "Scala", "React"},
		Tags:     []string{"Asset Management", "Financial Services"},
	},
	"morgan stanley": {
		Name: "Morgan Stanley", Domain: "morganstanley.com",
		Industry: "Investment Banking", EmployeeCount: 80000, FoundedYear: 1935,
		Headquarters: "New York, NY US", MarketCap: 150e9,
		TechTags: []string{"Java", "Python", "Cloud"},
		Tags:     []string{"Investment Banking", "Financial Services"},
	},
	"google": {
		Name: "Google", Domain: "google.com",
		Industry: "Technology", EmployeeCount: 180000, FoundedYear: 1998,
		Headquarters: "Mountain View, CA US", MarketCap: 2000e9,
		TechTags: []string{"TensorFlow", "Kubernetes", "Go", "GCP"},
		Tags:     []string{"Technology", "Search", "AI"},
	},
	"stripe": {
		Name: "Stripe", Domain: "stripe.com",
		Industry: "Financial Services", EmployeeCount: 7000, FoundedYear: 2010,
		Headquarters: "San Francisco, CA US", MarketCap: 65e9,
		TechTags: []string{"Ruby", "React", "AWS"},
		Tags:     []string{"Fintech", "Payments", "API"},
	},
}

var jobTable = map[string]domain.JobAnalysis{
	"jpmorgan chase": {
		TotalJobs: 28, AIMLJobs: 5, TechJobs: 18, AIMLPercentage: 17.9,
		HiringIntensity: "high",
		TopTechnologies: map[string]int{"machine learning": 3, "data science": 4, "aml": 2},
		RecentTitles: []domain.JobTitle{
			{Title: "Quantitative Analyst", Location: "New York, NY"},
			{Title: "ML Platform Engineer", Location: "New York, NY", IsAIML: true},
			{Title: "Data Engineer", Location: "Chicago, IL"},
		},
		TechStackSignals: []string{"python", "spark", "aws", "kafka", "machine learning"},
	},
	"goldman sachs": {
		TotalJobs: 22, AIMLJobs: 4, TechJobs: 14, AIMLPercentage: 18.2,
		HiringIntensity: "moderate",
		TopTechnologies: map[string]int{"machine learning": 3, "risk modeling": 2},
		RecentTitles: []domain.JobTitle{
			{Title: "Quantitative Strategist", Location: "New York, NY"},
			{Title: "Machine Learning Engineer", Location: "Dallas, TX", IsAIML: true},
		},
		TechStackSignals: []string{"python", "java", "risk modeling", "kubernetes"},
	},
	"google": {
		TotalJobs: 42, AIMLJobs: 18, TechJobs: 20, AIMLPercentage: 42.9,
		HiringIntensity: "very_high",
		TopTechnologies: map[string]int{"tensorflow": 15, "machine learning": 12, "pytorch": 8},
		RecentTitles: []domain.JobTitle{
			{Title: "Senior ML Engineer", Location: "Mountain View, CA", IsAIML: true},
			{Title: "AI Research Scientist", Location: "New York, NY", IsAIML: true},
		},
		TechStackSignals: []string{"tensorflow", "pytorch", "kubernetes", "python"},
	},
}

var websiteTable = map[string]domain.WebsiteAnalysis{
	"jpmorgan chase": {
		Domain: "jpmorganchase.com", AIMentions: 68,
		TechPages: []string{"/technology", "/artificial-intelligence", "/innovation"},
		KeyInitiatives: []string{
			"Contract intelligence platform",
			"AI trading execution",
			"Fraud detection neural networks",
		},
		VisibleTech:     []string{"python", "java", "aws", "kafka"},
		InnovationScore: 91,
		FullText: "artificial intelligence machine learning fraud detection credit risk " +
			"model risk management basel iii data governance cloud aws kyc aml " +
			"transaction monitoring algorithmic trading regulatory reporting",
	},
	"goldman sachs": {
		Domain: "goldmansachs.com", AIMentions: 47,
		TechPages: []string{"/technology/artificial-intelligence", "/careers/engineering"},
		KeyInitiatives: []string{
			"AI-powered risk management platform",
			"Automated trading systems",
			"Machine learning for market analysis",
		},
		VisibleTech:     []string{"python", "react", "aws", "kubernetes"},
		InnovationScore: 82,
		FullText: "machine learning risk modeling market risk monte carlo stress testing " +
			"data lake cloud kubernetes quantitative modeling derivatives pricing " +
			"model validation api microservices",
	},
	"blackrock": {
		Domain: "blackrock.com", AIMentions: 52,
		TechPages: []string{"/aladdin", "/technology", "/ai-investing"},
		KeyInitiatives: []string{
			"Aladdin AI enhancement",
			"Systematic active investing with ML",
			"Risk analytics automation",
		},
		VisibleTech:     []string{"python", "azure", "scala", "react"},
		InnovationScore: 86,
		FullText: "portfolio optimization machine learning risk analytics data governance " +
			"snowflake azure cloud quantitative analysis value at risk scenario analysis " +
			"ai governance responsible ai",
	},
}

var newsTable = map[string]domain.NewsAnalysis{
	"jpmorgan chase": {
		TotalArticles: 24, AIRelatedCount: 9, FinancialSource: 11,
		Articles: []domain.NewsArticle{
			{Title: "JPMorgan expands AI assistant to all employees", Source: "Reuters", AIRelated: true},
			{Title: "JPMorgan's machine learning push reshapes trading desks", Source: "Bloomberg", AIRelated: true},
			{Title: "JPMorgan reports quarterly earnings beat", Source: "Wall Street Journal"},
		},
		KeyEntities: []string{"Jamie Dimon", "Lori Beer"},
	},
	"goldman sachs": {
		TotalArticles: 18, AIRelatedCount: 6, FinancialSource: 9,
		Articles: []domain.NewsArticle{
			{Title: "Goldman Sachs deploys generative AI for developers", Source: "Financial Times", AIRelated: true},
			{Title: "Goldman Sachs names new technology leadership", Source: "Reuters"},
		},
		KeyEntities: []string{"David Solomon", "Marco Argenti"},
	},
}

// genericCompany fills in for companies with no curated entry. Values are a
// plausible mid-market profile so the scoring bands stay meaningful.
func genericCompany(name, companyDomain string) domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:          name,
		Domain:        companyDomain,
		Industry:      "default",
		EmployeeCount: 500,
		TechTags:      []string{"Python"},
	}
}

func genericJobs() domain.JobAnalysis {
	return domain.JobAnalysis{
		TotalJobs: 8, AIMLJobs: 1, TechJobs: 5, AIMLPercentage: 12.5,
		HiringIntensity: "low",
		TopTechnologies: map[string]int{"python": 3, "data science": 1},
		RecentTitles: []domain.JobTitle{
			{Title: "Software Engineer", Location: "Remote"},
		},
		TechStackSignals: []string{"python", "javascript", "sql"},
	}
}

func genericNews() domain.NewsAnalysis {
	return domain.NewsAnalysis{TotalArticles: 2, AIRelatedCount: 0}
}

func genericWebsite(companyDomain string) domain.WebsiteAnalysis {
	return domain.WebsiteAnalysis{
		Domain:          companyDomain,
		AIMentions:      3,
		TechPages:       []string{"/about", "/products"},
		VisibleTech:     []string{"wordpress"},
		InnovationScore: 25,
	}
}
