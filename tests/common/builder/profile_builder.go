//go:build unit || e2e

package builder

import (
	"time"

	"flightdeals/internal/domain/profile"
	"flightdeals/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ProfileBuilder struct {
	ID               uuid.UUID
	Name             string
	Email            string
	Phone            *string
	IsPremium        bool
	PremiumExpiresAt *time.Time
	IsAdmin          bool
	CreatedAt        time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		ID:        uuid.New(),
		Name:      "Ana Traveler",
		Email:     "ana@example.com",
		CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

// PremiumUntil grants premium with an expiry; a nil expiry never lapses.
func (b *ProfileBuilder) PremiumUntil(expiresAt *time.Time) *ProfileBuilder {
	b.IsPremium = true
	b.PremiumExpiresAt = expiresAt
	return b
}

func (b *ProfileBuilder) Admin() *ProfileBuilder {
	b.IsAdmin = true
	return b
}

func (b *ProfileBuilder) BuildDomain() *profile.Profile {
	return profile.Reconstruct(b.ID, b.Name, b.Email, b.Phone, b.IsPremium, b.PremiumExpiresAt, b.IsAdmin, b.CreatedAt, b.CreatedAt)
}

func (b *ProfileBuilder) BuildInfra() sqlc.Profiles {
	row := sqlc.Profiles{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		IsPremium: b.IsPremium,
		IsAdmin:   b.IsAdmin,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Phone != nil {
		row.Phone = pgtype.Text{String: *b.Phone, Valid: true}
	}
	if b.PremiumExpiresAt != nil {
		row.PremiumExpiresAt = pgtype.Timestamptz{Time: *b.PremiumExpiresAt, Valid: true}
	}
	return row
}
