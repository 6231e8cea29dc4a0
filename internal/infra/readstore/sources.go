package readstore

import (
	"time"

	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra/repository/converter"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

const savedFrom = `(SELECT p.*, b.id AS bookmark_id, b.user_id AS owner_id, b.created_at AS saved_at
	FROM bookmarks b JOIN promotions p ON p.id = b.promotion_id) s`

func NewSources(db sqlc.DBTX) queries.Sources {
	return queries.Sources{
		Users:      NewUserSource(db),
		Promotions: NewPromotionSource(db),
		Orders:     NewOrderSource(db),
		Saved:      NewSavedSource(db),
	}
}

func NewUserSource(db sqlc.DBTX) queries.Source[*profile.Profile] {
	return &table[*profile.Profile]{
		db:      db,
		name:    "users",
		from:    "profiles",
		columns: sqlc.ProfileColumns,
		scan: func(rows pgx.Rows) (*profile.Profile, error) {
			row, err := sqlc.ScanProfile(rows)
			if err != nil {
				return nil, err
			}
			return converter.ProfileFromRow(row), nil
		},
	}
}

func NewPromotionSource(db sqlc.DBTX) queries.Source[*promotion.Promotion] {
	return &table[*promotion.Promotion]{
		db:      db,
		name:    "promotions",
		from:    "promotions",
		columns: sqlc.PromotionColumns,
		scan: func(rows pgx.Rows) (*promotion.Promotion, error) {
			row, err := sqlc.ScanPromotion(rows)
			if err != nil {
				return nil, err
			}
			return converter.PromotionFromRow(row)
		},
	}
}

func NewOrderSource(db sqlc.DBTX) queries.Source[*order.Order] {
	return &table[*order.Order]{
		db:      db,
		name:    "orders",
		from:    "orders",
		columns: sqlc.OrderColumns,
		scan: func(rows pgx.Rows) (*order.Order, error) {
			row, err := sqlc.ScanOrder(rows)
			if err != nil {
				return nil, err
			}
			return converter.OrderFromRow(row)
		},
	}
}

func NewSavedSource(db sqlc.DBTX) queries.Source[queries.SavedPromotion] {
	return &table[queries.SavedPromotion]{
		db:      db,
		name:    "saved promotions",
		from:    savedFrom,
		columns: sqlc.PromotionColumns + ", bookmark_id, saved_at",
		scan: func(rows pgx.Rows) (queries.SavedPromotion, error) {
			var (
				bookmarkID int64
				savedAt    time.Time
			)
			row, err := sqlc.ScanPromotion(rows, &bookmarkID, &savedAt)
			if err != nil {
				return queries.SavedPromotion{}, err
			}
			p, err := converter.PromotionFromRow(row)
			if err != nil {
				return queries.SavedPromotion{}, err
			}
			return queries.SavedPromotion{BookmarkID: bookmarkID, SavedAt: savedAt, Promotion: p}, nil
		},
	}
}
