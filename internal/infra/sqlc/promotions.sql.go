package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPromotion = `-- name: CreatePromotion :one
INSERT INTO promotions (
    author_id, origin, destination, payment_type, price, miles, discount, is_premium,
    airline, dates, times, baggage, stopover, duration, description, terms, trip_type, travel_class, link,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
)
RETURNING id
`

type CreatePromotionParams struct {
	AuthorID    uuid.UUID          `json:"author_id"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	PaymentType string             `json:"payment_type"`
	Price       pgtype.Numeric     `json:"price"`
	Miles       pgtype.Int8        `json:"miles"`
	Discount    int32              `json:"discount"`
	IsPremium   bool               `json:"is_premium"`
	Airline     string             `json:"airline"`
	Dates       string             `json:"dates"`
	Times       string             `json:"times"`
	Baggage     string             `json:"baggage"`
	Stopover    string             `json:"stopover"`
	Duration    string             `json:"duration"`
	Description string             `json:"description"`
	Terms       []string           `json:"terms"`
	TripType    string             `json:"trip_type"`
	TravelClass string             `json:"travel_class"`
	Link        string             `json:"link"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreatePromotion(ctx context.Context, db DBTX, arg CreatePromotionParams) (int64, error) {
	row := db.QueryRow(ctx, createPromotion,
		arg.AuthorID,
		arg.Origin,
		arg.Destination,
		arg.PaymentType,
		arg.Price,
		arg.Miles,
		arg.Discount,
		arg.IsPremium,
		arg.Airline,
		arg.Dates,
		arg.Times,
		arg.Baggage,
		arg.Stopover,
		arg.Duration,
		arg.Description,
		arg.Terms,
		arg.TripType,
		arg.TravelClass,
		arg.Link,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getPromotionByID = `-- name: GetPromotionByID :one
SELECT ` + PromotionColumns + `
FROM promotions
WHERE id = $1
`

func (q *Queries) GetPromotionByID(ctx context.Context, db DBTX, id int64) (Promotions, error) {
	row := db.QueryRow(ctx, getPromotionByID, id)
	return ScanPromotion(row)
}

const updatePromotion = `-- name: UpdatePromotion :execrows
UPDATE promotions SET
    origin = $2, destination = $3, payment_type = $4, price = $5, miles = $6, discount = $7,
    is_premium = $8, airline = $9, dates = $10, times = $11, baggage = $12, stopover = $13,
    duration = $14, description = $15, terms = $16, trip_type = $17, travel_class = $18, link = $19,
    updated_at = $20
WHERE id = $1
`

type UpdatePromotionParams struct {
	ID          int64              `json:"id"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	PaymentType string             `json:"payment_type"`
	Price       pgtype.Numeric     `json:"price"`
	Miles       pgtype.Int8        `json:"miles"`
	Discount    int32              `json:"discount"`
	IsPremium   bool               `json:"is_premium"`
	Airline     string             `json:"airline"`
	Dates       string             `json:"dates"`
	Times       string             `json:"times"`
	Baggage     string             `json:"baggage"`
	Stopover    string             `json:"stopover"`
	Duration    string             `json:"duration"`
	Description string             `json:"description"`
	Terms       []string           `json:"terms"`
	TripType    string             `json:"trip_type"`
	TravelClass string             `json:"travel_class"`
	Link        string             `json:"link"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdatePromotion(ctx context.Context, db DBTX, arg UpdatePromotionParams) (int64, error) {
	result, err := db.Exec(ctx, updatePromotion,
		arg.ID,
		arg.Origin,
		arg.Destination,
		arg.PaymentType,
		arg.Price,
		arg.Miles,
		arg.Discount,
		arg.IsPremium,
		arg.Airline,
		arg.Dates,
		arg.Times,
		arg.Baggage,
		arg.Stopover,
		arg.Duration,
		arg.Description,
		arg.Terms,
		arg.TripType,
		arg.TravelClass,
		arg.Link,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePromotion = `-- name: DeletePromotion :execrows
DELETE FROM promotions WHERE id = $1
`

func (q *Queries) DeletePromotion(ctx context.Context, db DBTX, id int64) (int64, error) {
	result, err := db.Exec(ctx, deletePromotion, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockPromotion = `-- name: LockPromotion :one
SELECT id FROM promotions WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockPromotion(ctx context.Context, db DBTX, id int64) (int64, error) {
	row := db.QueryRow(ctx, lockPromotion, id)
	var locked int64
	err := row.Scan(&locked)
	return locked, err
}
