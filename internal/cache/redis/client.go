package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prospect-intel/backend/internal/domain"
	"github.com/prospect-intel/backend/pkg/logger"
	"github.com/prospect-intel/backend/pkg/namekey"
)

// Client caches completed analyses keyed by the normalized company name so
// repeated lookups within the TTL skip the provider fan-out.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(host string, port int, password string, db int, ttl time.Duration) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis client initialized",
		zap.String("addr", fmt.Sprintf("%s:%d", host, port)),
		zap.Duration("ttl", ttl))

	return &Client{client: client, ttl: ttl}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func analysisKey(companyName string) string {
	return fmt.Sprintf("analysis:%s", namekey.CacheKey(companyName))
}

// SetAnalysis stores a completed analysis under the company's cache key.
func (c *Client) SetAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	key := analysisKey(analysis.CompanyName)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis cache: %w", err)
	}

	logger.Debug("Analysis cached", zap.String("key", key), zap.Duration("ttl", c.ttl))
	return nil
}

// GetAnalysis returns the cached analysis for the company, or found=false on
// a miss.
func (c *Client) GetAnalysis(ctx context.Context, companyName string) (*domain.Analysis, bool, error) {
	key := analysisKey(companyName)
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get analysis cache: %w", err)
	}

	var analysis domain.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	logger.Debug("Analysis cache hit", zap.String("key", key))
	return &analysis, true, nil
}

// InvalidateAnalysis drops the cached entry for one company.
func (c *Client) InvalidateAnalysis(ctx context.Context, companyName string) error {
	if err := c.client.Del(ctx, analysisKey(companyName)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate analysis cache: %w", err)
	}
	return nil
}

// InvalidateAll removes every cached analysis.
func (c *Client) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "analysis:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn("Failed to delete cache key", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to iterate cache keys: %w", err)
	}
	return nil
}

// HealthCheck verifies the redis connection.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
