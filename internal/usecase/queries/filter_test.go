//go:build unit

package queries_test

import (
	"testing"
	"time"

	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Rejects(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		schema    queries.Schema
		filters   map[string][]string
		wantField string
	}{
		{name: "unknown key", schema: queries.PromotionSchema, filters: map[string][]string{"color": {"red"}}, wantField: "color"},
		{name: "range addressed directly", schema: queries.PromotionSchema, filters: map[string][]string{"discount": {"10"}}, wantField: "discount"},
		{name: "range suffix on non range field", schema: queries.PromotionSchema, filters: map[string][]string{"airlineFrom": {"A"}}, wantField: "airlineFrom"},
		{name: "bad tier", schema: queries.UserSchema, filters: map[string][]string{"isPremium": {"gold"}}, wantField: "isPremium"},
		{name: "enum outside set", schema: queries.PromotionSchema, filters: map[string][]string{"tripType": {"one_way,multi_city"}}, wantField: "tripType"},
		{name: "empty value", schema: queries.PromotionSchema, filters: map[string][]string{"from": {""}}, wantField: "from"},
		{name: "repeated scalar", schema: queries.PromotionSchema, filters: map[string][]string{"from": {"Rio", "Lima"}}, wantField: "from"},
		{name: "not a number", schema: queries.PromotionSchema, filters: map[string][]string{"discountFrom": {"ten"}}, wantField: "discountFrom"},
		{name: "inverted range", schema: queries.PromotionSchema, filters: map[string][]string{"discountFrom": {"50"}, "discountTo": {"10"}}, wantField: "discount"},
		{name: "bad uuid", schema: queries.OrderSchema, filters: map[string][]string{"userId": {"abc"}}, wantField: "userId"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			preds, err := queries.Compile(tc.schema, tc.filters, now)

			require.Error(t, err)
			assert.Nil(t, preds)
			assert.True(t, errs.Is(err, errs.ErrValidation))

			var verr *queries.ValidationError
			require.True(t, errs.As(err, &verr))
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestCompile_Accepts(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("tier all adds nothing", func(t *testing.T) {
		preds, err := queries.Compile(queries.UserSchema, map[string][]string{"isPremium": {"ALL"}}, now)
		require.NoError(t, err)
		assert.Empty(t, preds)
	})

	t.Run("date only upper bound covers the whole day", func(t *testing.T) {
		preds, err := queries.Compile(queries.PromotionSchema, map[string][]string{
			"createdAtFrom": {"2025-05-01"},
			"createdAtTo":   {"2025-05-31"},
		}, now)
		require.NoError(t, err)
		require.Len(t, preds, 1)
		assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), preds[0].Lo)
		assert.Equal(t, time.Date(2025, 5, 31, 23, 59, 59, 999999999, time.UTC), preds[0].Hi)
	})

	t.Run("enum list is normalized", func(t *testing.T) {
		preds, err := queries.Compile(queries.PromotionSchema, map[string][]string{"travelClass": {"Business, first_class"}}, now)
		require.NoError(t, err)
		require.Len(t, preds, 1)
		assert.Equal(t, queries.OpIn, preds[0].Op)
		assert.Equal(t, []any{"business", "first_class"}, preds[0].Values)
	})

	t.Run("tier carries the evaluation time", func(t *testing.T) {
		preds, err := queries.Compile(queries.UserSchema, map[string][]string{"isPremium": {"free"}}, now)
		require.NoError(t, err)
		require.Len(t, preds, 1)
		assert.False(t, preds[0].Premium)
		assert.Equal(t, "premium_expires_at", preds[0].ExpiryColumn)
		assert.Equal(t, now, preds[0].Now)
	})
}

func TestResolveSort(t *testing.T) {
	s, err := queries.ResolveSort(queries.PromotionSchema, "", "")
	require.NoError(t, err)
	assert.Equal(t, queries.PromotionSchema.DefaultSort, s)

	s, err = queries.ResolveSort(queries.PromotionSchema, "discount", "ASC")
	require.NoError(t, err)
	assert.Equal(t, queries.Sort{Column: "discount"}, s)

	_, err = queries.ResolveSort(queries.PromotionSchema, "link", "")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	_, err = queries.ResolveSort(queries.PromotionSchema, "discount", "sideways")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
