package converter

import (
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/pgconv"
)

func ProfileToCreateParams(p *profile.Profile) sqlc.CreateProfileParams {
	return sqlc.CreateProfileParams{
		ID:               p.ID(),
		Name:             p.Name(),
		Email:            p.Email(),
		Phone:            pgconv.StringPtrToPgtype(p.Phone()),
		IsPremium:        p.IsPremium(),
		PremiumExpiresAt: pgconv.TimePtrToPgtype(p.PremiumExpiresAt()),
		IsAdmin:          p.IsAdmin(),
		CreatedAt:        pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileToUpdateParams(p *profile.Profile) sqlc.UpdateProfileParams {
	return sqlc.UpdateProfileParams{
		ID:               p.ID(),
		Name:             p.Name(),
		Phone:            pgconv.StringPtrToPgtype(p.Phone()),
		IsPremium:        p.IsPremium(),
		PremiumExpiresAt: pgconv.TimePtrToPgtype(p.PremiumExpiresAt()),
		IsAdmin:          p.IsAdmin(),
		UpdatedAt:        pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileFromRow(row sqlc.Profiles) *profile.Profile {
	return profile.Reconstruct(
		row.ID,
		row.Name,
		row.Email,
		pgconv.StringPtrFromPgtype(row.Phone),
		row.IsPremium,
		pgconv.TimePtrFromPgtype(row.PremiumExpiresAt),
		row.IsAdmin,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
