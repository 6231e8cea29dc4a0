//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"flightdeals/internal/domain/promotion"
	"flightdeals/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PromotionBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPromotionBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPromotion(t *testing.T) {
	t.Run("valid cash promotion", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, err)

		cash, ok := p.Payment().(promotion.Cash)
		require.True(t, ok)
		assert.True(t, cash.Amount.Equal(decimal.RequireFromString("499.90")))
		assert.Equal(t, "São Paulo", p.Route().From())
		assert.Equal(t, 30, p.Discount().Value())
	})

	t.Run("payment variants are exclusive", func(t *testing.T) {
		miles := int64(1000)
		price := decimal.NewFromInt(10)
		runCases(t, []testCase{
			{name: "miles variant OK", mutate: func(b *builder.PromotionBuilder) { b.PaidInMiles(12000) }},
			{name: "cash without price NG", mutate: func(b *builder.PromotionBuilder) { b.Price = nil }, errIs: promotion.ErrMissingPrice},
			{name: "cash carrying miles NG", mutate: func(b *builder.PromotionBuilder) { b.Miles = &miles }, errIs: promotion.ErrMissingPrice},
			{name: "miles carrying price NG", mutate: func(b *builder.PromotionBuilder) { b.PaidInMiles(100).Price = &price }, errIs: promotion.ErrMissingMiles},
			{name: "zero miles NG", mutate: func(b *builder.PromotionBuilder) { b.PaidInMiles(0) }, errIs: promotion.ErrNonPositiveMiles},
			{name: "negative price NG", mutate: func(b *builder.PromotionBuilder) {
				neg := decimal.NewFromInt(-1)
				b.Price = &neg
			}, errIs: promotion.ErrNegativePrice},
			{name: "unknown payment type NG", mutate: func(b *builder.PromotionBuilder) { b.PaymentType = "voucher" }, errIs: promotion.ErrInvalidPaymentType},
		})
	})

	t.Run("discount bounds", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "0 OK", mutate: func(b *builder.PromotionBuilder) { b.Discount = 0 }},
			{name: "100 OK", mutate: func(b *builder.PromotionBuilder) { b.Discount = 100 }},
			{name: "-1 NG", mutate: func(b *builder.PromotionBuilder) { b.Discount = -1 }, errIs: promotion.ErrInvalidDiscount},
			{name: "101 NG", mutate: func(b *builder.PromotionBuilder) { b.Discount = 101 }, errIs: promotion.ErrInvalidDiscount},
		})
	})

	t.Run("descriptive fields", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "unknown trip type NG", mutate: func(b *builder.PromotionBuilder) { b.TripType = "multi_city" }, errIs: promotion.ErrInvalidTripType},
			{name: "unknown class NG", mutate: func(b *builder.PromotionBuilder) { b.TravelClass = "cargo" }, errIs: promotion.ErrInvalidTravelClass},
			{name: "blank airline NG", mutate: func(b *builder.PromotionBuilder) { b.Airline = "  " }, errIs: promotion.ErrInvalidAirline},
			{name: "non http link NG", mutate: func(b *builder.PromotionBuilder) { b.Link = "javascript:alert(1)" }, errIs: promotion.ErrInvalidLink},
			{name: "empty link OK", mutate: func(b *builder.PromotionBuilder) { b.Link = "" }},
		})
	})

	t.Run("revise keeps identity and creation time", func(t *testing.T) {
		p := builder.NewPromotionBuilder().MustBuildDomain()
		createdAt := p.CreatedAt()
		later := createdAt.Add(time.Hour)

		params := p.Params()
		params.Terms = []string{" Non-refundable ", "", "Carry-on only"}
		params.Discount = 55
		require.NoError(t, p.Revise(params, later))

		assert.EqualValues(t, 42, p.ID())
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.Equal(t, later, p.UpdatedAt())
		if diff := cmp.Diff([]string{"Non-refundable", "Carry-on only"}, p.Details().Terms); diff != "" {
			t.Errorf("terms mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("failed revise leaves promotion unchanged", func(t *testing.T) {
		p := builder.NewPromotionBuilder().MustBuildDomain()
		params := p.Params()
		params.Discount = 500

		require.ErrorIs(t, p.Revise(params, time.Now()), promotion.ErrInvalidDiscount)
		assert.Equal(t, 30, p.Discount().Value())
	})
}
