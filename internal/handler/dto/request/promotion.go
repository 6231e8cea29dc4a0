package request

import (
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// CreatePromotionRequest carries exactly one of price (cash) or miles.
type CreatePromotionRequest struct {
	From        string           `json:"from" binding:"required,max=120"`
	To          string           `json:"to" binding:"required,max=120"`
	PaymentType string           `json:"payment_type" binding:"required,oneof=cash miles"`
	Price       *decimal.Decimal `json:"price"`
	Miles       *int64           `json:"miles" binding:"omitempty,min=1"`
	Discount    int              `json:"discount" binding:"min=0,max=100"`
	IsPremium   bool             `json:"is_premium"`
	Airline     string           `json:"airline" binding:"required,max=120"`
	Dates       string           `json:"dates" binding:"max=500"`
	Times       string           `json:"times" binding:"max=500"`
	Baggage     string           `json:"baggage" binding:"max=500"`
	Stopover    string           `json:"stopover" binding:"max=500"`
	Duration    string           `json:"duration" binding:"max=120"`
	Description string           `json:"description" binding:"max=5000"`
	Terms       []string         `json:"terms" binding:"max=50,dive,max=500"`
	TripType    string           `json:"trip_type" binding:"required"`
	TravelClass string           `json:"travel_class" binding:"required"`
	Link        string           `json:"link" binding:"omitempty,url"`
}

func (r *CreatePromotionRequest) ToParams(authorID uuid.UUID) promotion.Params {
	return promotion.Params{
		AuthorID:    authorID,
		From:        r.From,
		To:          r.To,
		PaymentType: r.PaymentType,
		Price:       r.Price,
		Miles:       r.Miles,
		Discount:    r.Discount,
		IsPremium:   r.IsPremium,
		Airline:     r.Airline,
		Dates:       r.Dates,
		Times:       r.Times,
		Baggage:     r.Baggage,
		Stopover:    r.Stopover,
		Duration:    r.Duration,
		Description: r.Description,
		Terms:       r.Terms,
		TripType:    r.TripType,
		TravelClass: r.TravelClass,
		Link:        r.Link,
	}
}

// UpdatePromotionRequest is a partial update; absent fields keep their value.
type UpdatePromotionRequest struct {
	From        *string          `json:"from" binding:"omitempty,max=120"`
	To          *string          `json:"to" binding:"omitempty,max=120"`
	PaymentType *string          `json:"payment_type" binding:"omitempty,oneof=cash miles"`
	Price       *decimal.Decimal `json:"price"`
	Miles       *int64           `json:"miles" binding:"omitempty,min=1"`
	Discount    *int             `json:"discount" binding:"omitempty,min=0,max=100"`
	IsPremium   *bool            `json:"is_premium"`
	Airline     *string          `json:"airline" binding:"omitempty,max=120"`
	Dates       *string          `json:"dates" binding:"omitempty,max=500"`
	Times       *string          `json:"times" binding:"omitempty,max=500"`
	Baggage     *string          `json:"baggage" binding:"omitempty,max=500"`
	Stopover    *string          `json:"stopover" binding:"omitempty,max=500"`
	Duration    *string          `json:"duration" binding:"omitempty,max=120"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Terms       *[]string        `json:"terms"`
	TripType    *string          `json:"trip_type"`
	TravelClass *string          `json:"travel_class"`
	Link        *string          `json:"link" binding:"omitempty,max=2048"`
}

func (r *UpdatePromotionRequest) ToPatch() (commands.PromotionPatch, error) {
	var p commands.PromotionPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.PromotionPatch{}, err
	}
	return p, nil
}
