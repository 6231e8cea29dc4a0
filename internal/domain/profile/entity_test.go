//go:build unit

package profile_test

import (
	"strings"
	"testing"
	"time"

	"flightdeals/internal/domain/profile"
	"flightdeals/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name  string
		id    uuid.UUID
		pname string
		email string
		errIs error
	}{
		{name: "valid", id: id, pname: "  Ana  ", email: "ana@example.com"},
		{name: "nil id", id: uuid.Nil, pname: "Ana", email: "ana@example.com", errIs: profile.ErrInvalidID},
		{name: "blank name", id: id, pname: "   ", email: "ana@example.com", errIs: profile.ErrInvalidName},
		{name: "name too long", id: id, pname: strings.Repeat("a", 101), email: "ana@example.com", errIs: profile.ErrInvalidName},
		{name: "bad email", id: id, pname: "Ana", email: "ana@", errIs: profile.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := profile.New(tt.id, tt.pname, tt.email, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", p.Name())
			assert.False(t, p.IsPremium())
			assert.False(t, p.IsAdmin())
			assert.Equal(t, now, p.CreatedAt())
		})
	}
}

func TestPremiumActiveAt(t *testing.T) {
	tests := []struct {
		name string
		b    *builder.ProfileBuilder
		want bool
	}{
		{name: "free", b: builder.NewProfileBuilder(), want: false},
		{name: "premium without expiry", b: builder.NewProfileBuilder().PremiumUntil(nil), want: true},
		{name: "premium expiring later", b: builder.NewProfileBuilder().PremiumUntil(ptr(now.Add(time.Hour))), want: true},
		{name: "premium expired", b: builder.NewProfileBuilder().PremiumUntil(ptr(now.Add(-time.Hour))), want: false},
		{name: "expires exactly now", b: builder.NewProfileBuilder().PremiumUntil(ptr(now)), want: false},
		{name: "expiry without flag", b: builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) {
			b.PremiumExpiresAt = ptr(now.Add(time.Hour))
		}), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.b.BuildDomain()
			assert.Equal(t, tt.want, p.PremiumActiveAt(now))
			// the stored flag is never rewritten by a read
			assert.Equal(t, tt.b.IsPremium, p.IsPremium())
		})
	}

	t.Run("nil profile", func(t *testing.T) {
		var p *profile.Profile
		assert.False(t, p.PremiumActiveAt(now))
	})
}

func TestUpdateContact(t *testing.T) {
	t.Run("nil fields are left alone", func(t *testing.T) {
		p := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) { b.Phone = ptr("+55 11 5555-0100") }).BuildDomain()
		require.NoError(t, p.UpdateContact(nil, nil, now))
		assert.Equal(t, "Ana Traveler", p.Name())
		assert.Equal(t, "+55 11 5555-0100", *p.Phone())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("empty phone clears it", func(t *testing.T) {
		p := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) { b.Phone = ptr("+55 11 5555-0100") }).BuildDomain()
		require.NoError(t, p.UpdateContact(ptr("Ana B."), ptr(""), now))
		assert.Equal(t, "Ana B.", p.Name())
		assert.Nil(t, p.Phone())
	})

	t.Run("invalid phone keeps previous values", func(t *testing.T) {
		p := builder.NewProfileBuilder().BuildDomain()
		err := p.UpdateContact(ptr("Renamed"), ptr("call me"), now)
		assert.ErrorIs(t, err, profile.ErrInvalidPhone)
		assert.Equal(t, "Ana Traveler", p.Name())
		assert.NotEqual(t, now, p.UpdatedAt())
	})
}

func TestGrantAdmin(t *testing.T) {
	p := builder.NewProfileBuilder().BuildDomain()
	assert.True(t, p.GrantAdmin(now))
	assert.True(t, p.IsAdmin())
	assert.False(t, p.GrantAdmin(now.Add(time.Minute)))
	assert.Equal(t, now, p.UpdatedAt())
}

func TestSetSubscription(t *testing.T) {
	t.Run("grant with expiry", func(t *testing.T) {
		p := builder.NewProfileBuilder().BuildDomain()
		local := time.Date(2025, 7, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))
		require.NoError(t, p.SetSubscription(true, &local, now))
		assert.True(t, p.PremiumActiveAt(now))
		assert.Equal(t, time.UTC, p.PremiumExpiresAt().Location())
		assert.True(t, local.Equal(*p.PremiumExpiresAt()))
	})

	t.Run("revoke clears expiry", func(t *testing.T) {
		p := builder.NewProfileBuilder().PremiumUntil(ptr(now.Add(time.Hour))).BuildDomain()
		require.NoError(t, p.SetSubscription(false, nil, now))
		assert.False(t, p.IsPremium())
		assert.Nil(t, p.PremiumExpiresAt())
	})

	t.Run("expiry without grant", func(t *testing.T) {
		p := builder.NewProfileBuilder().BuildDomain()
		err := p.SetSubscription(false, ptr(now.Add(time.Hour)), now)
		assert.ErrorIs(t, err, profile.ErrExpiryNoGrant)
		assert.Nil(t, p.PremiumExpiresAt())
	})
}
