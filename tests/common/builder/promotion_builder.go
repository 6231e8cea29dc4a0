//go:build unit || e2e

package builder

import (
	"time"

	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PromotionBuilder struct {
	ID          int64
	AuthorID    uuid.UUID
	From        string
	To          string
	PaymentType string
	Price       *decimal.Decimal
	Miles       *int64
	Discount    int
	IsPremium   bool
	Airline     string
	Description string
	Terms       []string
	TripType    string
	TravelClass string
	Link        string
	Baggage     string
	Stopover    string
	Duration    string
	CreatedAt   time.Time
}

func NewPromotionBuilder() *PromotionBuilder {
	price := decimal.RequireFromString("499.90")
	return &PromotionBuilder{
		ID:          42,
		AuthorID:    uuid.New(),
		From:        "São Paulo",
		To:          "Lisbon",
		PaymentType: string(promotion.PaymentCash),
		Price:       &price,
		Discount:    30,
		Airline:     "TAP",
		Description: "Round trip in low season",
		Terms:       []string{"Non-refundable"},
		TripType:    string(promotion.TripRoundTrip),
		TravelClass: string(promotion.ClassEconomy),
		Link:        "https://deals.example.com/gru-lis",
		Baggage:     "1 checked bag",
		Stopover:    "Direct",
		Duration:    "10h 20m",
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

// Premium switches the builder to premium content.
func (b *PromotionBuilder) Premium() *PromotionBuilder {
	b.IsPremium = true
	return b
}

// PaidInMiles switches the builder to the miles payment variant.
func (b *PromotionBuilder) PaidInMiles(miles int64) *PromotionBuilder {
	b.PaymentType = string(promotion.PaymentMiles)
	b.Price = nil
	b.Miles = &miles
	return b
}

func (b *PromotionBuilder) Params() promotion.Params {
	return promotion.Params{
		AuthorID:    b.AuthorID,
		From:        b.From,
		To:          b.To,
		PaymentType: b.PaymentType,
		Price:       b.Price,
		Miles:       b.Miles,
		Discount:    b.Discount,
		IsPremium:   b.IsPremium,
		Airline:     b.Airline,
		Description: b.Description,
		Terms:       b.Terms,
		TripType:    b.TripType,
		TravelClass: b.TravelClass,
		Link:        b.Link,
		Baggage:     b.Baggage,
		Stopover:    b.Stopover,
		Duration:    b.Duration,
	}
}

// BuildDomain returns a validated promotion carrying b.ID.
func (b *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	p, err := promotion.New(b.Params(), b.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.AssignID(b.ID)
	return p, nil
}

func (b *PromotionBuilder) MustBuildDomain() *promotion.Promotion {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PromotionBuilder) BuildInfra() sqlc.Promotions {
	row := sqlc.Promotions{
		ID:          b.ID,
		AuthorID:    b.AuthorID,
		Origin:      b.From,
		Destination: b.To,
		PaymentType: b.PaymentType,
		Discount:    int32(b.Discount),
		IsPremium:   b.IsPremium,
		Airline:     b.Airline,
		Description: b.Description,
		Terms:       b.Terms,
		TripType:    b.TripType,
		TravelClass: b.TravelClass,
		Link:        b.Link,
		Baggage:     b.Baggage,
		Stopover:    b.Stopover,
		Duration:    b.Duration,
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	row.Price = pgconv.DecimalPtrToNumeric(b.Price)
	row.Miles = pgconv.Int8PtrToPgtype(b.Miles)
	return row
}
