// Package linkedin wraps a dataset-scraping API whose jobs run for minutes:
// a trigger call returns a snapshot ID, and the snapshot is polled until the
// scrape completes. It is never called on the synchronous analyze path.
package linkedin

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
)

// profileURLPattern is the only URL shape the dataset accepts; anything else
// is rejected before submission.
var profileURLPattern = regexp.MustCompile(`^https://(www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+/?$`)

// ErrSnapshotPending is returned by GetSnapshot while the scrape is running.
var ErrSnapshotPending = fmt.Errorf("snapshot still processing")

// Profile is one scraped member record.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"position"`
	URL      string `json:"url"`
	Company  string `json:"current_company"`
	Location string `json:"city"`
}

type Client struct {
	apiKey       string
	datasetID    string
	baseURL      string
	pollInterval time.Duration
	pollAttempts int
	httpClient   *http.Client
}

func NewClient(apiKey, datasetID, baseURL string, pollInterval time.Duration, pollAttempts int) *Client {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	if pollAttempts <= 0 {
		pollAttempts = 10
	}
	return &Client{
		apiKey:       apiKey,
		datasetID:    datasetID,
		baseURL:      strings.TrimRight(baseURL, "/"),
		pollInterval: pollInterval,
		pollAttempts: pollAttempts,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
	}
}

// ValidateURL reports whether the dataset will accept the given profile URL.
func ValidateURL(url string) bool {
	return profileURLPattern.MatchString(url)
}

// Trigger submits profile URLs for scraping and returns the snapshot ID.
// Invalid URLs are dropped; an error is returned only if none remain.
func (c *Client) Trigger(ctx context.Context, urls []string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrNoCredentials
	}

	valid := make([]map[string]string, 0, len(urls))
	for _, u := range urls {
		if !ValidateURL(u) {
			logger.Warn("Dropping invalid profile URL", zap.String("url", u))
			continue
		}
		valid = append(valid, map[string]string{"url": u})
	}
	if len(valid) == 0 {
		return "", fmt.Errorf("no valid profile URLs to submit")
	}

	body, err := json.Marshal(valid)
	if err != nil {
		return "", fmt.Errorf("failed to marshal trigger payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/datasets/v3/trigger?dataset_id=%s&include_errors=true",
		c.baseURL, c.datasetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("trigger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated &&
		resp.StatusCode != http.StatusAccepted {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &domain.ProviderError{
			Provider:   domain.ProviderLinkedIn,
			StatusCode: resp.StatusCode,
			Message:    string(msg),
		}
	}

	var payload struct {
		SnapshotID string `json:"snapshot_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &domain.ProviderError{
			Provider: domain.ProviderLinkedIn,
			Message:  fmt.Sprintf("malformed trigger response: %v", err),
		}
	}
	if payload.SnapshotID == "" {
		return "", &domain.ProviderError{
			Provider: domain.ProviderLinkedIn,
			Message:  "trigger response missing snapshot_id",
		}
	}

	logger.Info("Profile scrape triggered",
		zap.String("snapshot_id", payload.SnapshotID),
		zap.Int("urls", len(valid)),
	)

	return payload.SnapshotID, nil
}

// GetSnapshot retrieves a snapshot's results, or ErrSnapshotPending while the
// scrape is still running. Results arrive as newline-delimited JSON.
func (c *Client) GetSnapshot(ctx context.Context, snapshotID string) ([]Profile, error) {
	endpoint := fmt.Sprintf("%s/datasets/v3/snapshot/%s", c.baseURL, snapshotID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusAccepted:
		return nil, ErrSnapshotPending
	case http.StatusOK:
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &domain.ProviderError{
			Provider:   domain.ProviderLinkedIn,
			StatusCode: resp.StatusCode,
			Message:    string(msg),
		}
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var status struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&status); err == nil && status.Status == "running" {
			return nil, ErrSnapshotPending
		}
		return nil, &domain.ProviderError{
			Provider: domain.ProviderLinkedIn,
			Message:  "unexpected snapshot status payload",
		}
	}

	var profiles []Profile
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var p Profile
		if err := json.Unmarshal([]byte(line), &p); err != nil {
			continue
		}
		profiles = append(profiles, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}

	return profiles, nil
}

// Collect runs the full two-phase call: trigger, then poll with bounded
// attempts. Callers run this off the request path; a full collection can
// take minutes.
func (c *Client) Collect(ctx context.Context, urls []string) ([]Profile, error) {
	snapshotID, err := c.Trigger(ctx, urls)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= c.pollAttempts; attempt++ {
		profiles, err := c.GetSnapshot(ctx, snapshotID)
		if err == nil {
			logger.Info("Profile scrape complete",
				zap.String("snapshot_id", snapshotID),
				zap.Int("profiles", len(profiles)),
			)
			return profiles, nil
		}
		if err != ErrSnapshotPending {
			return nil, err
		}

		logger.Debug("Snapshot pending",
			zap.String("snapshot_id", snapshotID),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.pollAttempts),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}

	return nil, fmt.Errorf("snapshot %s not ready after %d attempts", snapshotID, c.pollAttempts)
}
