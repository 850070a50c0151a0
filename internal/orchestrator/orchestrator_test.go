package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/recommend"
	"github.com/prospect-intel/backend/internal/scoring"
)

type stubEnrichment struct {
	calls     int32
	lastQuery domain.CompanyQuery
	info      *domain.CompanyInfo
	err       error
}

func (s *stubEnrichment) Enrich(ctx context.Context, query domain.CompanyQuery) (*domain.CompanyInfo, error) {
	atomic.AddInt32(&s.calls, 1)
	s.lastQuery = query
	return s.info, s.err
}

type stubNews struct {
	calls int32
	news  *domain.NewsAnalysis
	err   error
}

func (s *stubNews) Search(ctx context.Context, companyName string) (*domain.NewsAnalysis, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.news, s.err
}

type stubJobs struct {
	calls int32
	jobs  *domain.JobAnalysis
	err   error
}

func (s *stubJobs) Search(ctx context.Context, companyName string) (*domain.JobAnalysis, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.jobs, s.err
}

type stubWebsite struct {
	calls int32
	site  *domain.WebsiteAnalysis
	err   error
}

func (s *stubWebsite) Analyze(ctx context.Context, companyDomain string) (*domain.WebsiteAnalysis, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.site, s.err
}

type stubCache struct {
	stored *domain.Analysis
	hit    *domain.Analysis
}

func (s *stubCache) GetAnalysis(ctx context.Context, companyName string) (*domain.Analysis, bool, error) {
	return s.hit, s.hit != nil, nil
}

func (s *stubCache) SetAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	s.stored = analysis
	return nil
}

type stubStore struct {
	inserted []*domain.Analysis
	err      error
}

func (s *stubStore) InsertAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	s.inserted = append(s.inserted, analysis)
	return s.err
}

var (
	testThresholds = []float64{35, 50, 65, 80}
	testCategories = []string{
		"Not Ready", "Early Stage", "Developing", "Advanced", "AI Leader",
	}
)

func liveStubs() (*stubEnrichment, *stubNews, *stubJobs, *stubWebsite) {
	enrich := &stubEnrichment{info: &domain.CompanyInfo{
		Name: "Acme Robotics", Domain: "acme.example",
		Industry: "Technology", EmployeeCount: 1200, MarketCap: 2e9,
	}}
	news := &stubNews{news: &domain.NewsAnalysis{TotalArticles: 5, AIRelatedCount: 3}}
	jobs := &stubJobs{jobs: &domain.JobAnalysis{TotalJobs: 12, AIMLJobs: 6, TechJobs: 4}}
	site := &stubWebsite{site: &domain.WebsiteAnalysis{
		Domain: "acme.example", AIMentions: 15, InnovationScore: 60,
	}}
	return enrich, news, jobs, site
}

func newTestService(enrich EnrichmentProvider, news NewsProvider, jobs JobsProvider, site WebsiteProvider, cache AnalysisCache, store AnalysisStore) *Service {
	timeouts := Timeouts{
		Enrichment: time.Second,
		News:       time.Second,
		Jobs:       time.Second,
		Website:    time.Second,
	}
	return NewService(enrich, news, jobs, site, cache, store,
		scoring.NewEngine(),
		recommend.NewGenerator(nil, testThresholds, testCategories),
		timeouts)
}

func TestAnalyzeEmptyName(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	svc := newTestService(enrich, news, jobs, site, nil, nil)

	for _, name := range []string{"", "   ", "..."} {
		_, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: name}, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCompanyName, "name %q", name)
	}
	assert.Zero(t, atomic.LoadInt32(&enrich.calls))
	assert.Zero(t, atomic.LoadInt32(&jobs.calls))
}

func TestAnalyzeAllProvidersLive(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	store := &stubStore{}
	cache := &stubCache{}
	svc := newTestService(enrich, news, jobs, site, cache, store)

	analysis, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Acme Robotics", analysis.CompanyName)
	assert.Equal(t, "acme.example", analysis.Domain)
	assert.False(t, analysis.Cached)
	assert.NotEmpty(t, analysis.ID)
	assert.NotEmpty(t, analysis.Category)
	require.NotNil(t, analysis.Breakdown)
	assert.Equal(t, 1.0, analysis.Breakdown.Confidence)
	require.NotNil(t, analysis.Recommendations)
	assert.NotEmpty(t, analysis.DecisionMakers)

	require.Len(t, analysis.Profile.Sources, 4)
	for _, src := range analysis.Profile.Sources {
		assert.Equal(t, domain.StatusLive, src.Status, string(src.Provider))
	}

	require.Len(t, store.inserted, 1)
	assert.Same(t, analysis, store.inserted[0])
	assert.Same(t, analysis, cache.stored)
}

func TestAnalyzeOneProviderFails(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	jobs.jobs = nil
	jobs.err = errors.New("upstream 503")
	svc := newTestService(enrich, news, jobs, site, nil, nil)

	analysis, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, nil)
	require.NoError(t, err)

	require.NotNil(t, analysis.Profile.Jobs, "fallback data expected")
	assert.Equal(t, 0.75, analysis.Breakdown.Confidence)

	var jobsSource *domain.ProviderResult
	for i := range analysis.Profile.Sources {
		if analysis.Profile.Sources[i].Provider == domain.ProviderJobs {
			jobsSource = &analysis.Profile.Sources[i]
		}
	}
	require.NotNil(t, jobsSource)
	assert.Equal(t, domain.StatusFallback, jobsSource.Status)
	assert.Contains(t, jobsSource.Err, "upstream 503")
}

func TestAnalyzeAllProvidersFail(t *testing.T) {
	boom := errors.New("network down")
	enrich := &stubEnrichment{err: boom}
	news := &stubNews{err: boom}
	jobs := &stubJobs{err: boom}
	site := &stubWebsite{err: boom}
	svc := newTestService(enrich, news, jobs, site, nil, nil)

	analysis, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, analysis.Breakdown.Confidence)
	require.NotNil(t, analysis.Profile.Company)
	require.NotNil(t, analysis.Profile.Jobs)
	require.NotNil(t, analysis.Profile.News)
	require.NotNil(t, analysis.Profile.Website)
	for _, src := range analysis.Profile.Sources {
		assert.Equal(t, domain.StatusFallback, src.Status, string(src.Provider))
	}
}

func TestAnalyzeCacheHit(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	cached := &domain.Analysis{
		ID:          "cached-id",
		CompanyName: "Acme Robotics",
		Breakdown:   &domain.ScoreBreakdown{Total: 55},
	}
	cache := &stubCache{hit: cached}
	svc := newTestService(enrich, news, jobs, site, cache, nil)

	analysis, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "cached-id", analysis.ID)
	assert.True(t, analysis.Cached)
	assert.Zero(t, atomic.LoadInt32(&enrich.calls))
	assert.Zero(t, atomic.LoadInt32(&news.calls))
	assert.Zero(t, atomic.LoadInt32(&jobs.calls))
	assert.Zero(t, atomic.LoadInt32(&site.calls))
}

func TestAnalyzeDerivesEnrichmentDomain(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	svc := newTestService(enrich, news, jobs, site, nil, nil)

	_, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "JPMorgan Chase"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "jpmorganchase.com", enrich.lastQuery.Domain)

	_, err = svc.Analyze(context.Background(),
		domain.CompanyQuery{Name: "JPMorgan Chase", Domain: "jpmc.example"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "jpmc.example", enrich.lastQuery.Domain)
}

func TestAnalyzeProgressCallbacks(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	svc := newTestService(enrich, news, jobs, site, nil, nil)

	var steps []string
	progress := func(step, detail string) { steps = append(steps, step) }

	_, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, progress)
	require.NoError(t, err)

	assert.Contains(t, steps, "providers")
	assert.Contains(t, steps, "scoring")
	assert.Contains(t, steps, "done")
}

func TestAnalyzeStoreFailureIsNonFatal(t *testing.T) {
	enrich, news, jobs, site := liveStubs()
	store := &stubStore{err: errors.New("disk full")}
	svc := newTestService(enrich, news, jobs, site, nil, store)

	analysis, err := svc.Analyze(context.Background(), domain.CompanyQuery{Name: "Acme Robotics"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, analysis)
}
