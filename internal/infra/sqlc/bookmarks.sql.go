package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertBookmark = `-- name: InsertBookmark :one
INSERT INTO bookmarks (user_id, promotion_id, created_at)
VALUES ($1, $2, $3)
RETURNING id
`

type InsertBookmarkParams struct {
	UserID      uuid.UUID          `json:"user_id"`
	PromotionID int64              `json:"promotion_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertBookmark(ctx context.Context, db DBTX, arg InsertBookmarkParams) (int64, error) {
	row := db.QueryRow(ctx, insertBookmark, arg.UserID, arg.PromotionID, arg.CreatedAt)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const findBookmarkByPair = `-- name: FindBookmarkByPair :one
SELECT id, user_id, promotion_id, created_at
FROM bookmarks
WHERE user_id = $1 AND promotion_id = $2
`

type FindBookmarkByPairParams struct {
	UserID      uuid.UUID `json:"user_id"`
	PromotionID int64     `json:"promotion_id"`
}

func (q *Queries) FindBookmarkByPair(ctx context.Context, db DBTX, arg FindBookmarkByPairParams) (Bookmarks, error) {
	row := db.QueryRow(ctx, findBookmarkByPair, arg.UserID, arg.PromotionID)
	var i Bookmarks
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.PromotionID,
		&i.CreatedAt,
	)
	return i, err
}

const deleteOwnedBookmark = `-- name: DeleteOwnedBookmark :execrows
DELETE FROM bookmarks WHERE id = $1 AND user_id = $2 AND promotion_id = $3
`

type DeleteOwnedBookmarkParams struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	PromotionID int64     `json:"promotion_id"`
}

func (q *Queries) DeleteOwnedBookmark(ctx context.Context, db DBTX, arg DeleteOwnedBookmarkParams) (int64, error) {
	result, err := db.Exec(ctx, deleteOwnedBookmark, arg.ID, arg.UserID, arg.PromotionID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countBookmarksByPromotion = `-- name: CountBookmarksByPromotion :one
SELECT count(*) FROM bookmarks WHERE promotion_id = $1
`

func (q *Queries) CountBookmarksByPromotion(ctx context.Context, db DBTX, promotionID int64) (int64, error) {
	row := db.QueryRow(ctx, countBookmarksByPromotion, promotionID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteBookmarksByPromotion = `-- name: DeleteBookmarksByPromotion :execrows
DELETE FROM bookmarks WHERE promotion_id = $1
`

func (q *Queries) DeleteBookmarksByPromotion(ctx context.Context, db DBTX, promotionID int64) (int64, error) {
	result, err := db.Exec(ctx, deleteBookmarksByPromotion, promotionID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countBookmarksByUser = `-- name: CountBookmarksByUser :one
SELECT count(*) FROM bookmarks WHERE user_id = $1
`

func (q *Queries) CountBookmarksByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countBookmarksByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteBookmarksByUser = `-- name: DeleteBookmarksByUser :execrows
DELETE FROM bookmarks WHERE user_id = $1
`

func (q *Queries) DeleteBookmarksByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteBookmarksByUser, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
