//go:build unit

package access_test

import (
	"testing"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestDecide(t *testing.T) {
	tests := []struct {
		viewer  access.ViewerTier
		content access.ContentTier
		want    access.Decision
	}{
		{access.TierAnonymous, access.ContentFree, access.Full},
		{access.TierFree, access.ContentFree, access.Full},
		{access.TierPremium, access.ContentFree, access.Full},
		{access.TierAdmin, access.ContentFree, access.Full},
		{access.TierAnonymous, access.ContentPremium, access.Redacted},
		{access.TierFree, access.ContentPremium, access.Redacted},
		{access.TierPremium, access.ContentPremium, access.Full},
		{access.TierAdmin, access.ContentPremium, access.Full},
	}
	for _, tt := range tests {
		t.Run(string(tt.viewer)+"/"+string(tt.content), func(t *testing.T) {
			assert.Equal(t, tt.want, access.Decide(tt.viewer, tt.content))
		})
	}
}

func TestTierOf(t *testing.T) {
	lapsed := now.Add(-24 * time.Hour)
	later := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		b    *builder.ProfileBuilder
		want access.ViewerTier
	}{
		{name: "free", b: builder.NewProfileBuilder(), want: access.TierFree},
		{name: "premium", b: builder.NewProfileBuilder().PremiumUntil(&later), want: access.TierPremium},
		{name: "lapsed premium", b: builder.NewProfileBuilder().PremiumUntil(&lapsed), want: access.TierFree},
		{name: "admin without premium", b: builder.NewProfileBuilder().Admin(), want: access.TierAdmin},
		{name: "admin with lapsed premium", b: builder.NewProfileBuilder().Admin().PremiumUntil(&lapsed), want: access.TierAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.TierOf(tt.b.BuildDomain(), now))
		})
	}

	assert.Equal(t, access.TierAnonymous, access.TierOf(nil, now))
}

func TestViewerDecideFor(t *testing.T) {
	premiumDeal := builder.NewPromotionBuilder().Premium().MustBuildDomain()
	freeDeal := builder.NewPromotionBuilder().MustBuildDomain()
	lapsed := now.Add(-time.Minute)
	id := uuid.New()

	lapsedViewer := access.ViewerOf(id, builder.NewProfileBuilder().PremiumUntil(&lapsed).BuildDomain(), now)
	assert.Equal(t, access.Redacted, lapsedViewer.DecideFor(premiumDeal))
	assert.Equal(t, access.Full, lapsedViewer.DecideFor(freeDeal))

	noProfile := access.ViewerOf(id, nil, now)
	assert.Equal(t, access.TierFree, noProfile.Tier)
	assert.True(t, noProfile.Authenticated())
	assert.Equal(t, access.Redacted, noProfile.DecideFor(premiumDeal))

	anon := access.Anonymous()
	assert.False(t, anon.Authenticated())
	assert.False(t, anon.IsAdmin())
	assert.Equal(t, access.Full, anon.DecideFor(freeDeal))
}
