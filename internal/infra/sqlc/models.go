package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookmarks struct {
	ID          int64              `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	PromotionID int64              `json:"promotion_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type Orders struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Plan      string             `json:"plan"`
	Amount    pgtype.Numeric     `json:"amount"`
	Currency  string             `json:"currency"`
	Status    string             `json:"status"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Profiles struct {
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

type Promotions struct {
	ID          int64              `json:"id"`
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

// PromotionColumns is the select list shared by every statement that scans
// into Promotions, in ScanPromotion order.
const PromotionColumns = `id, author_id, origin, destination, payment_type, price, miles, discount, is_premium,
	airline, dates, times, baggage, stopover, duration, description, terms, trip_type, travel_class, link,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func ScanPromotion(row rowScanner, extra ...interface{}) (Promotions, error) {
	var i Promotions
	dest := []interface{}{
		&i.ID,
		&i.AuthorID,
		&i.Origin,
		&i.Destination,
		&i.PaymentType,
		&i.Price,
		&i.Miles,
		&i.Discount,
		&i.IsPremium,
		&i.Airline,
		&i.Dates,
		&i.Times,
		&i.Baggage,
		&i.Stopover,
		&i.Duration,
		&i.Description,
		&i.Terms,
		&i.TripType,
		&i.TravelClass,
		&i.Link,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return i, err
}

const ProfileColumns = `id, name, email, phone, is_premium, premium_expires_at, is_admin, created_at, updated_at`

func ScanProfile(row rowScanner) (Profiles, error) {
	var i Profiles
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Phone,
		&i.IsPremium,
		&i.PremiumExpiresAt,
		&i.IsAdmin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const OrderColumns = `id, user_id, plan, amount, currency, status, created_at, updated_at`

func ScanOrder(row rowScanner) (Orders, error) {
	var i Orders
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Plan,
		&i.Amount,
		&i.Currency,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
