// Package cache provides Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	dashboardusecases "github.com/supportsync-io/supportsync/internal/application/dashboard/usecases"
	"github.com/supportsync-io/supportsync/internal/shared/authorization"
	"github.com/supportsync-io/supportsync/internal/shared/logger"
)

const summaryKey = "dashboard:summary"

// SummaryCache caches dashboard summaries in Redis for a short TTL.
// The aggregate queries behind the summary touch every table, so a
// stampede of admin page loads would otherwise hit the database each time.
type SummaryCache struct {
	inner  dashboardusecases.SummaryExecutor
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewSummaryCache(
	inner dashboardusecases.SummaryExecutor,
	client *redis.Client,
	ttl time.Duration,
	logger logger.Interface,
) *SummaryCache {
	return &SummaryCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Execute serves the summary from Redis when possible. The role gate stays
// in the inner usecase; non-admin subjects never consult the cache.
func (c *SummaryCache) Execute(ctx context.Context, query dashboardusecases.SummaryQuery) (*dashboardusecases.SummaryResult, error) {
	if query.SubjectRole != authorization.RoleAdmin {
		return c.inner.Execute(ctx, query)
	}

	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if err == nil {
		var result dashboardusecases.SummaryResult
		if err := json.Unmarshal(data, &result); err == nil {
			return &result, nil
		}
		c.logger.Warnw("discarding malformed cached summary", "error", err)
	} else if !errors.Is(err, redis.Nil) {
		// Redis being down should not take the dashboard with it.
		c.logger.Warnw("summary cache read failed", "error", err)
	}

	result, err := c.inner.Execute(ctx, query)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
			c.logger.Warnw("summary cache write failed", "error", err)
		}
	} else {
		c.logger.Warnw("failed to marshal summary for cache", "error", err)
	}

	return result, nil
}

// Invalidate drops the cached summary. Callers may use it after bulk
// imports or migrations where a stale window is unacceptable.
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
