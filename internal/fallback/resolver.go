// Package fallback substitutes deterministic placeholder data for provider
// sections that failed or returned nothing, so an analysis always completes.
package fallback

import (
	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/namekey"

	"go.uber.org/zap"
)

// Resolve fills every missing section of the profile with fallback data and
// stamps the matching Sources entry accordingly. Sections already populated
// by a live provider are left untouched.
func Resolve(profile *domain.CompositeProfile) {
	key := namekey.Normalize(profile.Query.Name)
	companyDomain := namekey.Domain(profile.Query.Name)

	if profile.Company == nil {
		info := lookupCompany(key, profile.Query.Name, companyDomain)
		profile.Company = &info
		markFallback(profile, domain.ProviderEnrichment)
	}
	if profile.Jobs == nil {
		jobs := lookupJobs(key)
		profile.Jobs = &jobs
		markFallback(profile, domain.ProviderJobs)
	}
	if profile.News == nil {
		news := lookupNews(key)
		profile.News = &news
		markFallback(profile, domain.ProviderNews)
	}
	if profile.Website == nil {
		site := lookupWebsite(key, profile.Company.Domain)
		profile.Website = &site
		markFallback(profile, domain.ProviderWebsite)
	}
}

func lookupCompany(key, name, companyDomain string) domain.CompanyInfo {
	if info, ok := companyTable[key]; ok {
		return info
	}
	return genericCompany(name, companyDomain)
}

func lookupJobs(key string) domain.JobAnalysis {
	if jobs, ok := jobTable[key]; ok {
		return jobs
	}
	return genericJobs()
}

func lookupNews(key string) domain.NewsAnalysis {
	if news, ok := newsTable[key]; ok {
		return news
	}
	return genericNews()
}

func lookupWebsite(key, companyDomain string) domain.WebsiteAnalysis {
	if site, ok := websiteTable[key]; ok {
		return site
	}
	return genericWebsite(companyDomain)
}

func markFallback(profile *domain.CompositeProfile, provider domain.Provider) {
	for i, s := range profile.Sources {
		if s.Provider == provider {
			profile.Sources[i].Status = domain.StatusFallback
			logFallback(profile.Query.Name, provider)
			return
		}
	}
	profile.Sources = append(profile.Sources, domain.ProviderResult{
		Provider: provider,
		Status:   domain.StatusFallback,
	})
	logFallback(profile.Query.Name, provider)
}

func logFallback(company string, provider domain.Provider) {
	logger.Debug("substituted fallback data",
		zap.String("provider", string(provider)),
		zap.String("company", company))
}
