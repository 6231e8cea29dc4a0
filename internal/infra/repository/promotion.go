package repository

import (
	"context"

	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/repository/converter"
	"flightdeals/internal/infra/sqlc"
)

type PromotionQueries interface {
	CreatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePromotionParams) (int64, error)
	GetPromotionByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Promotions, error)
	UpdatePromotion(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePromotionParams) (int64, error)
	LockPromotion(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	DeletePromotion(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type PromotionRepository struct {
	queries PromotionQueries
	db      sqlc.DBTX
}

func NewPromotionRepository(queries PromotionQueries, db sqlc.DBTX) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionRepository) FindByID(ctx context.Context, id int64) (*promotion.Promotion, error) {
	row, err := r.queries.GetPromotionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find promotion", err)
	}
	p, err := converter.PromotionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode promotion", err, infra.KindDBFailure)
	}
	return p, nil
}

func (r *PromotionRepository) Create(ctx context.Context, p *promotion.Promotion) (int64, error) {
	id, err := r.queries.CreatePromotion(ctx, r.db, converter.PromotionToCreateParams(p))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create promotion", err)
	}
	return id, nil
}

func (r *PromotionRepository) Update(ctx context.Context, p *promotion.Promotion) error {
	n, err := r.queries.UpdatePromotion(ctx, r.db, converter.PromotionToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update promotion", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return nil
}

func (r *PromotionRepository) Lock(ctx context.Context, id int64) error {
	if _, err := r.queries.LockPromotion(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to lock promotion", err)
	}
	return nil
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeletePromotion(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete promotion", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
	}
	return nil
}
