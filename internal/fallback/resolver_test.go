package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
)

func TestResolveFillsMissingSections(t *testing.T) {
	profile := &domain.CompositeProfile{
		Query: domain.CompanyQuery{Name: "Northwind Traders"},
	}

	Resolve(profile)

	require.NotNil(t, profile.Company)
	require.NotNil(t, profile.Jobs)
	require.NotNil(t, profile.News)
	require.NotNil(t, profile.Website)

	assert.Equal(t, "Northwind Traders", profile.Company.Name)
	assert.Len(t, profile.Sources, 4)
	for _, src := range profile.Sources {
		assert.Equal(t, domain.StatusFallback, src.Status, string(src.Provider))
	}
}

func TestResolveLeavesLiveSectionsAlone(t *testing.T) {
	company := &domain.CompanyInfo{Name: "Northwind Traders", Industry: "Logistics"}
	profile := &domain.CompositeProfile{
		Query:   domain.CompanyQuery{Name: "Northwind Traders"},
		Company: company,
		Sources: []domain.ProviderResult{
			{Provider: domain.ProviderEnrichment, Status: domain.StatusLive},
		},
	}

	Resolve(profile)

	assert.Same(t, company, profile.Company)
	assert.Equal(t, domain.StatusLive, profile.Sources[0].Status)
}

func TestResolvePreservesErrorOnFallbackEntry(t *testing.T) {
	profile := &domain.CompositeProfile{
		Query: domain.CompanyQuery{Name: "Northwind Traders"},
		Sources: []domain.ProviderResult{
			{Provider: domain.ProviderJobs, Status: domain.StatusError, Err: "upstream 503"},
		},
	}

	Resolve(profile)

	var jobs *domain.ProviderResult
	for i := range profile.Sources {
		if profile.Sources[i].Provider == domain.ProviderJobs {
			jobs = &profile.Sources[i]
		}
	}
	require.NotNil(t, jobs)
	assert.Equal(t, domain.StatusFallback, jobs.Status)
	assert.Equal(t, "upstream 503", jobs.Err)
}

func TestResolveUsesCuratedRecords(t *testing.T) {
	profile := &domain.CompositeProfile{
		Query: domain.CompanyQuery{Name: "JPMorgan Chase & Co."},
	}

	Resolve(profile)

	require.NotNil(t, profile.Company)
	assert.Equal(t, "Banking", profile.Company.Industry)
	assert.Greater(t, profile.Jobs.AIMLJobs, 0)
	assert.NotEmpty(t, profile.Website.FullText)
}

func TestResolveIsDeterministic(t *testing.T) {
	a := &domain.CompositeProfile{Query: domain.CompanyQuery{Name: "Goldman Sachs"}}
	b := &domain.CompositeProfile{Query: domain.CompanyQuery{Name: "Goldman Sachs"}}

	Resolve(a)
	Resolve(b)

	assert.Equal(t, a.Company, b.Company)
	assert.Equal(t, a.Jobs, b.Jobs)
	assert.Equal(t, a.News, b.News)
	assert.Equal(t, a.Website, b.Website)
}
