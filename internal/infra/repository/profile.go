package repository

import (
	"context"

	"flightdeals/internal/domain/profile"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/repository/converter"
	"flightdeals/internal/infra/sqlc"

	"github.com/google/uuid"
)

type ProfileQueries interface {
	CreateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProfileParams) (int64, error)
	GetProfileByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Profiles, error)
	UpdateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProfileParams) (int64, error)
	LockProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	DeleteProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ProfileRepository struct {
	queries ProfileQueries
	db      sqlc.DBTX
}

func NewProfileRepository(queries ProfileQueries, db sqlc.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	row, err := r.queries.GetProfileByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find profile", err)
	}
	return converter.ProfileFromRow(row), nil
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) (bool, error) {
	n, err := r.queries.CreateProfile(ctx, r.db, converter.ProfileToCreateParams(p))
	if err != nil {
		return false, infra.WrapRepoErr("failed to create profile", err)
	}
	return n > 0, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	n, err := r.queries.UpdateProfile(ctx, r.db, converter.ProfileToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "profile not found")
	}
	return nil
}

func (r *ProfileRepository) Lock(ctx context.Context, id uuid.UUID) error {
	if _, err := r.queries.LockProfile(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to lock profile", err)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteProfile(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete profile", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "profile not found")
	}
	return nil
}
