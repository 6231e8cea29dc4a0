//go:build unit

package readstore_test

import (
	"testing"
	"time"

	"flightdeals/internal/infra/readstore"
	"flightdeals/internal/pkg/pgconv"
	"flightdeals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildWhere(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	owner := uuid.New()

	testCases := []struct {
		name     string
		preds    []queries.Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no predicates",
			wantSQL: "",
		},
		{
			name:     "equality",
			preds:    []queries.Predicate{{Column: "owner_id", Op: queries.OpEq, Values: []any{owner}}},
			wantSQL:  " WHERE owner_id = $1",
			wantArgs: []any{owner},
		},
		{
			name:     "membership",
			preds:    []queries.Predicate{{Column: "trip_type", Op: queries.OpIn, Values: []any{"one_way", "round_trip"}}},
			wantSQL:  " WHERE trip_type IN ($1, $2)",
			wantArgs: []any{"one_way", "round_trip"},
		},
		{
			name:     "contains escapes wildcards",
			preds:    []queries.Predicate{{Column: "origin", Op: queries.OpContains, Values: []any{"50%_off"}}},
			wantSQL:  ` WHERE origin ILIKE $1 ESCAPE '\'`,
			wantArgs: []any{`%50\%\_off%`},
		},
		{
			name:     "open ended range",
			preds:    []queries.Predicate{{Column: "discount", Op: queries.OpRange, Lo: int64(20)}},
			wantSQL:  " WHERE discount >= $1",
			wantArgs: []any{int64(20)},
		},
		{
			name: "decimal range is sent as numeric",
			preds: []queries.Predicate{{
				Column: "amount", Op: queries.OpRange,
				Lo: decimal.RequireFromString("10"), Hi: decimal.RequireFromString("99.5"),
			}},
			wantSQL: " WHERE amount >= $1 AND amount <= $2",
			wantArgs: []any{
				pgconv.DecimalToNumeric(decimal.RequireFromString("10")),
				pgconv.DecimalToNumeric(decimal.RequireFromString("99.5")),
			},
		},
		{
			name:    "premium content",
			preds:   []queries.Predicate{{Column: "is_premium", Op: queries.OpTier, Premium: true}},
			wantSQL: " WHERE is_premium",
		},
		{
			name: "free users include lapsed premium",
			preds: []queries.Predicate{{
				Column: "is_premium", Op: queries.OpTier, Premium: false,
				ExpiryColumn: "premium_expires_at", Now: now,
			}},
			wantSQL:  " WHERE NOT (is_premium AND (premium_expires_at IS NULL OR premium_expires_at > $1))",
			wantArgs: []any{now},
		},
		{
			name: "predicates are joined in order",
			preds: []queries.Predicate{
				{Column: "owner_id", Op: queries.OpEq, Values: []any{owner}},
				{Column: "discount", Op: queries.OpRange, Lo: int64(10), Hi: int64(40)},
			},
			wantSQL:  " WHERE owner_id = $1 AND discount >= $2 AND discount <= $3",
			wantArgs: []any{owner, int64(10), int64(40)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var args readstore.Args
			sql := readstore.BuildWhere(tc.preds, &args)

			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args.Values())
		})
	}
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY discount DESC NULLS LAST, id DESC", readstore.OrderBy(queries.Sort{Column: "discount", Desc: true}))
	assert.Equal(t, " ORDER BY price ASC NULLS FIRST, id ASC", readstore.OrderBy(queries.Sort{Column: "price"}))
}
