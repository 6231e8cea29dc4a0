package repository

import (
	"context"
	"time"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookmarkQueries interface {
	InsertBookmark(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookmarkParams) (int64, error)
	FindBookmarkByPair(ctx context.Context, db sqlc.DBTX, arg sqlc.FindBookmarkByPairParams) (sqlc.Bookmarks, error)
	DeleteOwnedBookmark(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOwnedBookmarkParams) (int64, error)
	CountBookmarksByPromotion(ctx context.Context, db sqlc.DBTX, promotionID int64) (int64, error)
	DeleteBookmarksByPromotion(ctx context.Context, db sqlc.DBTX, promotionID int64) (int64, error)
	CountBookmarksByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	DeleteBookmarksByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type BookmarkRepository struct {
	queries BookmarkQueries
	db      sqlc.DBTX
}

func NewBookmarkRepository(queries BookmarkQueries, db sqlc.DBTX) *BookmarkRepository {
	return &BookmarkRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on bookmarks_user_promotion_key; a second insert for the pair
// surfaces as KindDuplicateKey.
func (r *BookmarkRepository) Insert(ctx context.Context, userID uuid.UUID, promotionID int64, now time.Time) (int64, error) {
	id, err := r.queries.InsertBookmark(ctx, r.db, sqlc.InsertBookmarkParams{
		UserID:      userID,
		PromotionID: promotionID,
		CreatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert bookmark", err)
	}
	return id, nil
}

func (r *BookmarkRepository) FindByPair(ctx context.Context, userID uuid.UUID, promotionID int64) (*bookmark.Bookmark, error) {
	row, err := r.queries.FindBookmarkByPair(ctx, r.db, sqlc.FindBookmarkByPairParams{
		UserID:      userID,
		PromotionID: promotionID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookmark", err)
	}
	return &bookmark.Bookmark{
		ID:          row.ID,
		UserID:      row.UserID,
		PromotionID: row.PromotionID,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *BookmarkRepository) DeleteOwned(ctx context.Context, id int64, key bookmark.Key) (bool, error) {
	n, err := r.queries.DeleteOwnedBookmark(ctx, r.db, sqlc.DeleteOwnedBookmarkParams{
		ID:          id,
		UserID:      key.UserID,
		PromotionID: key.PromotionID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete bookmark", err)
	}
	return n > 0, nil
}

func (r *BookmarkRepository) CountByPromotion(ctx context.Context, promotionID int64) (int64, error) {
	n, err := r.queries.CountBookmarksByPromotion(ctx, r.db, promotionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookmarks by promotion", err)
	}
	return n, nil
}

func (r *BookmarkRepository) DeleteByPromotion(ctx context.Context, promotionID int64) (int64, error) {
	n, err := r.queries.DeleteBookmarksByPromotion(ctx, r.db, promotionID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bookmarks by promotion", err)
	}
	return n, nil
}

func (r *BookmarkRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookmarksByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count bookmarks by user", err)
	}
	return n, nil
}

func (r *BookmarkRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteBookmarksByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete bookmarks by user", err)
	}
	return n, nil
}
