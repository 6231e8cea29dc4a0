//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/infra/memstore"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/queries"
	"flightdeals/internal/usecase/shared"
	"flightdeals/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	return config.Config{
		Store: config.StoreConfig{Timeout: time.Second, FanOut: 4},
		Query: config.QueryConfig{DefaultPageSize: 10, MaxPageSize: 100},
	}
}

func newEngine() *queries.Engine {
	return queries.NewEngine(testConfig(), clock.NewMockClock(testNow), metrics.New())
}

var adminViewer = access.Viewer{UserID: uuid.New(), Tier: access.TierAdmin}

// seedUsers stores premium active, premium lapsed and free profiles, each
// created one minute after the previous.
func seedUsers(t *testing.T, s *memstore.Store, premium, lapsed, free int) {
	t.Helper()
	ctx := context.Background()
	expired := testNow.Add(-time.Hour)
	i := 0
	add := func(mutate func(*builder.ProfileBuilder)) {
		b := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) {
			b.Email = fmt.Sprintf("user%02d@example.com", i)
			b.CreatedAt = testNow.Add(-time.Duration(100-i) * time.Minute)
		})
		mutate(b)
		_, err := s.Repositories().Profiles().Create(ctx, b.BuildDomain())
		require.NoError(t, err)
		i++
	}
	for range premium {
		add(func(b *builder.ProfileBuilder) { b.PremiumUntil(nil) })
	}
	for range lapsed {
		add(func(b *builder.ProfileBuilder) { b.PremiumUntil(&expired) })
	}
	for range free {
		add(func(b *builder.ProfileBuilder) {})
	}
}

func TestAdminQueries_ListUsers_PremiumFilter(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	seedUsers(t, s, 23, 3, 5)
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	page, err := q.ListUsers(ctx, adminViewer, queries.ListRequest{
		Page: 1, PageSize: 10, SortField: "createdAt", SortDirection: "desc",
		Filters: map[string][]string{"isPremium": {"premium"}},
	})
	require.NoError(t, err)

	assert.Len(t, page.Rows, 10)
	assert.Equal(t, 23, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	for _, u := range page.Rows {
		assert.True(t, u.PremiumActive)
	}
	for i := 1; i < len(page.Rows); i++ {
		assert.False(t, page.Rows[i].CreatedAt.After(page.Rows[i-1].CreatedAt))
	}

	free, err := q.ListUsers(ctx, adminViewer, queries.ListRequest{
		Page: 1, PageSize: 100, Filters: map[string][]string{"isPremium": {"free"}},
	})
	require.NoError(t, err)
	// lapsed grants count as free
	assert.Equal(t, 8, free.TotalCount)
}

func TestAdminQueries_PagesPartitionTheResult(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	seedUsers(t, s, 7, 0, 6)
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	req := queries.ListRequest{PageSize: 4, SortField: "name", SortDirection: "asc"}
	full, err := q.ListUsers(ctx, adminViewer, queries.ListRequest{PageSize: 100, SortField: "name", SortDirection: "asc"})
	require.NoError(t, err)
	require.Len(t, full.Rows, 13)

	var stitched []uuid.UUID
	for p := 1; ; p++ {
		req.Page = p
		page, err := q.ListUsers(ctx, adminViewer, req)
		require.NoError(t, err)
		assert.Equal(t, full.TotalCount, page.TotalCount)
		assert.Equal(t, 4, page.TotalPages)
		if len(page.Rows) == 0 {
			break
		}
		for _, u := range page.Rows {
			stitched = append(stitched, u.ID)
		}
	}

	want := make([]uuid.UUID, len(full.Rows))
	for i, u := range full.Rows {
		want[i] = u.ID
	}
	assert.Equal(t, want, stitched)
}

func TestAdminQueries_PageBeyondEndIsEmpty(t *testing.T) {
	s := memstore.New()
	seedUsers(t, s, 2, 0, 0)
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	page, err := q.ListUsers(context.Background(), adminViewer, queries.ListRequest{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Rows)
	assert.Empty(t, page.Rows)
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 9, page.Page)
}

func TestAdminQueries_HugePageIsEmpty(t *testing.T) {
	s := memstore.New()
	seedUsers(t, s, 2, 0, 1)
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{name: "offset would overflow", page: math.MaxInt64/10 + 2, pageSize: 10},
		{name: "max int page", page: math.MaxInt64, pageSize: 100},
		{name: "default page size", page: math.MaxInt64 / 2},
		{name: "just past the offset bound", page: math.MaxInt32/100 + 2, pageSize: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := q.ListUsers(context.Background(), adminViewer, queries.ListRequest{Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.NotNil(t, page.Rows)
			assert.Empty(t, page.Rows)
			assert.Equal(t, 3, page.TotalCount)
			assert.Equal(t, 1, page.TotalPages)
			assert.Equal(t, tt.page, page.Page)
		})
	}
}

func TestAdminQueries_Authorization(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	_, err := q.ListUsers(ctx, access.Anonymous(), queries.ListRequest{})
	assert.ErrorIs(t, err, shared.ErrLoginRequired)

	member := access.Viewer{UserID: uuid.New(), Tier: access.TierPremium}
	_, err = q.ListOrders(ctx, member, queries.ListRequest{})
	assert.True(t, errs.Is(err, errs.ErrForbidden))
}

func TestAdminQueries_InvalidFilterIsNotIgnored(t *testing.T) {
	s := memstore.New()
	seedUsers(t, s, 1, 0, 1)
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	page, err := q.ListUsers(context.Background(), adminViewer, queries.ListRequest{
		Filters: map[string][]string{"role": {"admin"}},
	})
	assert.Nil(t, page)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestAdminQueries_ListOrdersResolvesCustomers(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	customer := builder.NewProfileBuilder().BuildDomain()
	_, err := s.Repositories().Profiles().Create(ctx, customer)
	require.NoError(t, err)

	gone := uuid.New()
	for i, userID := range []uuid.UUID{customer.ID(), customer.ID(), gone} {
		s.SeedOrder(order.Order{
			UserID: userID, Plan: "annual", Amount: decimal.NewFromInt(99), Currency: "USD",
			Status: order.StatusPaid, CreatedAt: testNow.Add(time.Duration(i) * time.Minute), UpdatedAt: testNow,
		})
	}
	q := queries.NewAdminQueries(newEngine(), s.Sources(), queries.NewProfileDirectory(s))

	page, err := q.ListOrders(ctx, adminViewer, queries.ListRequest{SortField: "createdAt", SortDirection: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Rows, 3)

	require.NotNil(t, page.Rows[0].Customer)
	assert.Equal(t, customer.Email(), page.Rows[0].Customer.Email)
	assert.Equal(t, page.Rows[0].Customer, page.Rows[1].Customer)
	assert.Nil(t, page.Rows[2].Customer)
}
