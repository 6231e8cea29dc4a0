package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createProfile = `-- name: CreateProfile :execrows
INSERT INTO profiles (id, name, email, phone, is_premium, premium_expires_at, is_admin, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO NOTHING
`

type CreateProfileParams struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            pgtype.Text        `json:"phone"`
	IsPremium        bool               `json:"is_premium"`
	PremiumExpiresAt pgtype.Timestamptz `json:"premium_expires_at"`
	IsAdmin          bool               `json:"is_admin"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

// CreateProfile reports zero rows when a concurrent request created it first.
func (q *Queries) CreateProfile(ctx context.Context, db DBTX, arg CreateProfileParams) (int64, error) {
	result, err := db.Exec(ctx, createProfile,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Phone,
		arg.IsPremium,
		arg.PremiumExpiresAt,
		arg.IsAdmin,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getProfileByID = `-- name: GetProfileByID :one
SELECT ` + ProfileColumns + `
FROM profiles
WHERE id = $1
`

func (q *Queries) GetProfileByID(ctx context.Context, db DBTX, id uuid.UUID) (Profiles, error) {
	row := db.QueryRow(ctx, getProfileByID, id)
	return ScanProfile(row)
}

const updateProfile = `-- name: UpdateProfile :execrows
UPDATE profiles SET
    name = $2, phone = $3, is_premium = $4, premium_expires_at = $5, is_admin = $6, updated_at = $7
WHERE id = $1
`

type UpdateProfileParams struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Phone            pgtype.Text        `json:"phone"`
	IsPremium        bool               `json:"is_premium"`
	PremiumExpiresAt pgtype.Timestamptz `json:"premium_expires_at"`
	IsAdmin          bool               `json:"is_admin"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateProfile(ctx context.Context, db DBTX, arg UpdateProfileParams) (int64, error) {
	result, err := db.Exec(ctx, updateProfile,
		arg.ID,
		arg.Name,
		arg.Phone,
		arg.IsPremium,
		arg.PremiumExpiresAt,
		arg.IsAdmin,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteProfile = `-- name: DeleteProfile :execrows
DELETE FROM profiles WHERE id = $1
`

func (q *Queries) DeleteProfile(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteProfile, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockProfile = `-- name: LockProfile :one
SELECT id FROM profiles WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockProfile(ctx context.Context, db DBTX, id uuid.UUID) (uuid.UUID, error) {
	row := db.QueryRow(ctx, lockProfile, id)
	var locked uuid.UUID
	err := row.Scan(&locked)
	return locked, err
}
