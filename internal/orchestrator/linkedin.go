package orchestrator

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/internal/metrics"
	"github.com/prospect-intel/backend/internal/providers/linkedin"
	"github.com/prospect-intel/backend/pkg/logger"
)

// LinkedInRefresher enriches decision-maker data through the snapshot
// provider. Collection takes minutes, so it always runs in the background
// after the analysis has been returned; refreshed titles land in the cache
// for later requests.
type LinkedInRefresher struct {
	client  *linkedin.Client
	cache   AnalysisCache
	timeout time.Duration
}

func NewLinkedInRefresher(client *linkedin.Client, cache AnalysisCache, timeout time.Duration) *LinkedInRefresher {
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	return &LinkedInRefresher{client: client, cache: cache, timeout: timeout}
}

// RefreshAsync spawns the collection for one analysis and returns
// immediately. Safe to call with a nil receiver (provider disabled).
func (r *LinkedInRefresher) RefreshAsync(analysis *domain.Analysis) {
	if r == nil || r.client == nil {
		return
	}

	urls := make([]string, 0, len(analysis.DecisionMakers))
	for _, dm := range analysis.DecisionMakers {
		if dm.LinkedInURL != "" && linkedin.ValidateURL(dm.LinkedInURL) {
			urls = append(urls, dm.LinkedInURL)
		}
	}
	if len(urls) == 0 {
		return
	}

	go r.refresh(analysis, urls)
}

func (r *LinkedInRefresher) refresh(analysis *domain.Analysis, urls []string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	profiles, err := r.client.Collect(ctx, urls)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(string(domain.ProviderLinkedIn), "error").Inc()
		logger.Warn("linkedin refresh failed",
			zap.String("company", analysis.CompanyName),
			zap.Error(err))
		return
	}
	metrics.ProviderRequests.WithLabelValues(string(domain.ProviderLinkedIn), "ok").Inc()

	updated := mergeProfiles(analysis, profiles)
	if updated == 0 {
		return
	}

	if r.cache != nil {
		if err := r.cache.SetAnalysis(ctx, analysis); err != nil {
			logger.Warn("linkedin refresh cache write failed", zap.Error(err))
		}
	}

	logger.Info("linkedin profiles refreshed",
		zap.String("company", analysis.CompanyName),
		zap.Int("profiles", updated))
}

func mergeProfiles(analysis *domain.Analysis, profiles []linkedin.Profile) int {
	updated := 0
	for _, p := range profiles {
		for i := range analysis.DecisionMakers {
			dm := &analysis.DecisionMakers[i]
			if !sameProfile(dm.LinkedInURL, p.URL) {
				continue
			}
			if p.Title != "" && p.Title != dm.Title {
				dm.Title = p.Title
			}
			if p.Name != "" {
				dm.Name = p.Name
			}
			updated++
			break
		}
	}
	return updated
}

func sameProfile(a, b string) bool {
	trim := func(s string) string {
		s = strings.TrimPrefix(s, "https://www.linkedin.com")
		s = strings.TrimPrefix(s, "https://linkedin.com")
		return strings.Trim(s, "/")
	}
	return a != "" && b != "" && trim(a) == trim(b)
}
