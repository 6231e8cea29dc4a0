//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"flightdeals/internal/infra/cache"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDirectory struct {
	calls    int
	summary  *queries.CustomerSummary
	lastUser uuid.UUID
}

func (d *countingDirectory) CustomerSummary(_ context.Context, userID uuid.UUID) (*queries.CustomerSummary, error) {
	d.calls++
	d.lastUser = userID
	return d.summary, nil
}

func newCache(t *testing.T, next queries.CustomerDirectory) (*cache.CustomerCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := config.Config{Redis: config.RedisConfig{TTL: time.Minute}}
	return cache.NewCustomerCache(client, next, cfg, metrics.New()), mr
}

func TestCustomerCache_HitAfterMiss(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	dir := &countingDirectory{summary: &queries.CustomerSummary{ID: userID, Name: "Ana", Email: "ana@example.com"}}
	c, mr := newCache(t, dir)

	first, err := c.CustomerSummary(ctx, userID)
	require.NoError(t, err)
	second, err := c.CustomerSummary(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 1, dir.calls)
	assert.Equal(t, first, second)

	key := "customer:" + userID.String() + ":summary"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestCustomerCache_MissingCustomerIsNotCached(t *testing.T) {
	ctx := context.Background()
	dir := &countingDirectory{}
	c, mr := newCache(t, dir)

	got, err := c.CustomerSummary(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, mr.Keys())
}

func TestCustomerCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	dir := &countingDirectory{summary: &queries.CustomerSummary{ID: userID, Name: "Ana"}}
	c, _ := newCache(t, dir)

	_, err := c.CustomerSummary(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, userID))
	_, err = c.CustomerSummary(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, dir.calls)
}

func TestCustomerCache_RedisDownFallsThrough(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	dir := &countingDirectory{summary: &queries.CustomerSummary{ID: userID, Name: "Ana"}}
	c, mr := newCache(t, dir)
	mr.Close()

	got, err := c.CustomerSummary(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, userID, dir.lastUser)
}

func TestConnect_EmptyAddressDisablesCache(t *testing.T) {
	client, cleanup, err := cache.Connect(config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
	cleanup()
}
