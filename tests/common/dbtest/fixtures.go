//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"flightdeals/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func InsertProfile(t *testing.T, db DBLike, b *builder.ProfileBuilder) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO profiles (id, name, email, phone, is_premium, premium_expires_at, is_admin, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		b.ID, b.Name, b.Email, b.Phone, b.IsPremium, b.PremiumExpiresAt, b.IsAdmin, b.CreatedAt)
	require.NoError(t, err)
	return b.ID
}

// InsertPromotion ignores b.ID and returns the generated id.
func InsertPromotion(t *testing.T, db DBLike, b *builder.PromotionBuilder) int64 {
	t.Helper()

	var price *string
	if b.Price != nil {
		s := b.Price.String()
		price = &s
	}
	terms := b.Terms
	if terms == nil {
		terms = []string{}
	}

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO promotions (author_id, origin, destination, payment_type, price, miles, discount, is_premium,
		                         airline, description, terms, trip_type, travel_class, link, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		 RETURNING id`,
		b.AuthorID, b.From, b.To, b.PaymentType, price, b.Miles, b.Discount, b.IsPremium,
		b.Airline, b.Description, terms, b.TripType, b.TravelClass, b.Link, b.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertBookmark(t *testing.T, db DBLike, userID uuid.UUID, promotionID int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookmarks (user_id, promotion_id) VALUES ($1, $2) RETURNING id", userID, promotionID).Scan(&id)
	require.NoError(t, err)
	return id
}

func InsertOrder(t *testing.T, db DBLike, userID uuid.UUID, amount, status string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO orders (id, user_id, plan, amount, currency, status, created_at, updated_at)
		 VALUES ($1, $2, 'annual', $3::numeric, 'USD', $4, $5, $5)`,
		id, userID, decimal.RequireFromString(amount).String(), status, createdAt)
	require.NoError(t, err)
	return id
}

// BookmarkIDs lists userID's bookmark ids in insertion order.
func BookmarkIDs(t *testing.T, db DBLike, userID uuid.UUID) []int64 {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT id FROM bookmarks WHERE user_id = $1 ORDER BY id", userID)
	require.NoError(t, err)
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	require.NoError(t, err)
	return ids
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table+" WHERE "+where, args...).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
