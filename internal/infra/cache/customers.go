// Package cache keeps short-lived copies of customer summaries in redis.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const cacheName = "customer_summary"

func customerKey(userID uuid.UUID) string {
	return fmt.Sprintf("customer:%s:summary", userID)
}

// CustomerCache decorates a CustomerDirectory. Redis failures degrade to the
// wrapped directory and are never returned to the caller.
type CustomerCache struct {
	client  redis.UniversalClient
	next    queries.CustomerDirectory
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewCustomerCache(client redis.UniversalClient, next queries.CustomerDirectory, cfg config.Config, m *metrics.Metrics) *CustomerCache {
	return &CustomerCache{client: client, next: next, ttl: cfg.Redis.TTL, metrics: m}
}

func (c *CustomerCache) CustomerSummary(ctx context.Context, userID uuid.UUID) (*queries.CustomerSummary, error) {
	key := customerKey(userID)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var summary queries.CustomerSummary
		if jerr := json.Unmarshal(raw, &summary); jerr == nil {
			c.metrics.ObserveCache(cacheName, "hit")
			return &summary, nil
		}
		c.metrics.ObserveCache(cacheName, "error")
		slog.Warn("discarding undecodable cache entry", "key", key)
	case errs.Is(err, redis.Nil):
		c.metrics.ObserveCache(cacheName, "miss")
	default:
		c.metrics.ObserveCache(cacheName, "error")
		slog.Warn("customer cache read failed", "key", key, "error", err)
	}

	summary, err := c.next.CustomerSummary(ctx, userID)
	if err != nil || summary == nil {
		return summary, err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return summary, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.metrics.ObserveCache(cacheName, "error")
		slog.Warn("customer cache write failed", "key", key, "error", err)
		return summary, nil
	}
	c.metrics.ObserveCache(cacheName, "set")
	return summary, nil
}

// Invalidate drops the cached summary after a profile changes or is deleted.
func (c *CustomerCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, customerKey(userID)).Err(); err != nil {
		c.metrics.ObserveCache(cacheName, "error")
		return errs.Wrap(err, "failed to invalidate customer summary")
	}
	c.metrics.ObserveCache(cacheName, "del")
	return nil
}

// Connect returns nil when no address is configured.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.Addr == "" {
		slog.Info("redis address not set, customer cache disabled")
		return nil, func() {}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	slog.Info("Connected to redis", "addr", cfg.Addr)
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	return client, cleanup, nil
}
