package queries

import (
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CTABookNow = "book_now"
	CTAUpgrade = "upgrade"
)

// PromotionView is what leaves the server for one promotion. Under a REDACTED
// decision the price, miles, baggage, stopover, duration, description, terms
// and link are absent, not masked.
type PromotionView struct {
	ID          int64            `json:"id"`
	From        string           `json:"from"`
	To          string           `json:"to"`
	Airline     string           `json:"airline"`
	TripType    string           `json:"trip_type"`
	TravelClass string           `json:"travel_class"`
	PaymentType string           `json:"payment_type"`
	Discount    int              `json:"discount"`
	IsPremium   bool             `json:"is_premium"`
	Dates       string           `json:"dates"`
	Times       string           `json:"times"`
	Baggage     *string          `json:"baggage"`
	Stopover    *string          `json:"stopover"`
	Duration    *string          `json:"duration"`
	Price       *decimal.Decimal `json:"price"`
	Miles       *int64           `json:"miles"`
	Description *string          `json:"description"`
	Terms       []string         `json:"terms"`
	Link        *string          `json:"link"`
	Access      access.Decision  `json:"access"`
	CTA         string           `json:"cta"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// RenderPromotion is the single place a promotion is serialized for a viewer.
func RenderPromotion(p *promotion.Promotion, d access.Decision) PromotionView {
	details := p.Details()
	v := PromotionView{
		ID:          p.ID(),
		From:        p.Route().From(),
		To:          p.Route().To(),
		Airline:     details.Airline,
		TripType:    string(details.TripType),
		TravelClass: string(details.TravelClass),
		PaymentType: string(p.Payment().Type()),
		Discount:    p.Discount().Value(),
		IsPremium:   p.IsPremium(),
		Dates:       details.Dates,
		Times:       details.Times,
		Access:      d,
		CTA:         CTAUpgrade,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	if d != access.Full {
		return v
	}

	switch pay := p.Payment().(type) {
	case promotion.Cash:
		amount := pay.Amount
		v.Price = &amount
	case promotion.Miles:
		amount := pay.Amount
		v.Miles = &amount
	}
	baggage, stopover, duration, description := details.Baggage, details.Stopover, details.Duration, details.Description
	v.Baggage, v.Stopover, v.Duration = &baggage, &stopover, &duration
	v.Description = &description
	v.Terms = append([]string{}, details.Terms...)
	if link := p.Link(); link != "" {
		v.Link = &link
	}
	v.CTA = CTABookNow
	return v
}

// SavedPromotion is one row of a user's saved list as the store returns it.
type SavedPromotion struct {
	BookmarkID int64
	SavedAt    time.Time
	Promotion  *promotion.Promotion
}

type SavedPromotionView struct {
	BookmarkID int64         `json:"bookmark_id"`
	SavedAt    time.Time     `json:"saved_at"`
	Promotion  PromotionView `json:"promotion"`
}

type UserView struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone"`
	IsPremium        bool       `json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
	PremiumActive    bool       `json:"premium_active"`
	IsAdmin          bool       `json:"is_admin"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func RenderUser(p *profile.Profile, now time.Time) UserView {
	return UserView{
		ID:               p.ID(),
		Name:             p.Name(),
		Email:            p.Email(),
		Phone:            p.Phone(),
		IsPremium:        p.IsPremium(),
		PremiumExpiresAt: p.PremiumExpiresAt(),
		PremiumActive:    p.PremiumActiveAt(now),
		IsAdmin:          p.IsAdmin(),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
	}
}

type CustomerSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type OrderView struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Plan      string           `json:"plan"`
	Amount    decimal.Decimal  `json:"amount"`
	Currency  string           `json:"currency"`
	Status    order.Status     `json:"status"`
	Customer  *CustomerSummary `json:"customer"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func RenderOrder(o *order.Order, customer *CustomerSummary) OrderView {
	return OrderView{
		ID:        o.ID,
		UserID:    o.UserID,
		Plan:      o.Plan,
		Amount:    o.Amount,
		Currency:  o.Currency,
		Status:    o.Status,
		Customer:  customer,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
