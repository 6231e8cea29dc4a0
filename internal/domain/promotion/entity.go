package promotion

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Params carries unvalidated promotion attributes from a caller.
type Params struct {
	AuthorID    uuid.UUID
	From        string
	To          string
	PaymentType string
	Price       *decimal.Decimal
	Miles       *int64
	Discount    int
	IsPremium   bool
	Airline     string
	Dates       string
	Times       string
	Baggage     string
	Stopover    string
	Duration    string
	Description string
	Terms       []string
	TripType    string
	TravelClass string
	Link        string
}

type Details struct {
	Airline     string
	Dates       string
	Times       string
	Baggage     string
	Stopover    string
	Duration    string
	Description string
	Terms       []string
	TripType    TripType
	TravelClass TravelClass
}

type Promotion struct {
	id        int64
	authorID  uuid.UUID
	route     Route
	payment   PaymentTerms
	discount  Discount
	isPremium bool
	details   Details
	link      string
	createdAt time.Time
	updatedAt time.Time
}

// New validates params. The identifier is assigned by the store on insert.
func New(p Params, now time.Time) (*Promotion, error) {
	promo := &Promotion{authorID: p.AuthorID, createdAt: now}
	if err := promo.apply(p, now); err != nil {
		return nil, err
	}
	return promo, nil
}

func Reconstruct(id int64, authorID uuid.UUID, route Route, payment PaymentTerms, discount Discount, isPremium bool, details Details, link string, createdAt, updatedAt time.Time) *Promotion {
	return &Promotion{
		id:        id,
		authorID:  authorID,
		route:     route,
		payment:   payment,
		discount:  discount,
		isPremium: isPremium,
		details:   details,
		link:      link,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Revise replaces every mutable attribute. Identity, author and creation time are kept.
func (p *Promotion) Revise(params Params, now time.Time) error {
	next := *p
	if err := next.apply(params, now); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Promotion) apply(params Params, now time.Time) error {
	route, err := NewRoute(params.From, params.To)
	if err != nil {
		return err
	}
	payment, err := NewPaymentTerms(params.PaymentType, params.Price, params.Miles)
	if err != nil {
		return err
	}
	discount, err := NewDiscount(params.Discount)
	if err != nil {
		return err
	}
	tripType, err := NewTripType(params.TripType)
	if err != nil {
		return err
	}
	travelClass, err := NewTravelClass(params.TravelClass)
	if err != nil {
		return err
	}
	airline := strings.TrimSpace(params.Airline)
	if airline == "" {
		return ErrInvalidAirline
	}
	link, err := validateLink(params.Link)
	if err != nil {
		return err
	}

	terms := make([]string, 0, len(params.Terms))
	for _, t := range params.Terms {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}

	p.route = route
	p.payment = payment
	p.discount = discount
	p.isPremium = params.IsPremium
	p.details = Details{
		Airline:     airline,
		Dates:       params.Dates,
		Times:       params.Times,
		Baggage:     params.Baggage,
		Stopover:    params.Stopover,
		Duration:    params.Duration,
		Description: params.Description,
		Terms:       terms,
		TripType:    tripType,
		TravelClass: travelClass,
	}
	p.link = link
	p.updatedAt = now
	return nil
}

// Params returns the current attributes in their unvalidated form, for patching.
func (p *Promotion) Params() Params {
	out := Params{
		AuthorID:    p.authorID,
		From:        p.route.From(),
		To:          p.route.To(),
		PaymentType: string(p.payment.Type()),
		Discount:    p.discount.Value(),
		IsPremium:   p.isPremium,
		Airline:     p.details.Airline,
		Dates:       p.details.Dates,
		Times:       p.details.Times,
		Baggage:     p.details.Baggage,
		Stopover:    p.details.Stopover,
		Duration:    p.details.Duration,
		Description: p.details.Description,
		Terms:       append([]string(nil), p.details.Terms...),
		TripType:    string(p.details.TripType),
		TravelClass: string(p.details.TravelClass),
		Link:        p.link,
	}
	switch v := p.payment.(type) {
	case Cash:
		amount := v.Amount
		out.Price = &amount
	case Miles:
		amount := v.Amount
		out.Miles = &amount
	}
	return out
}

func (p *Promotion) AssignID(id int64) { p.id = id }

func (p *Promotion) ID() int64             { return p.id }
func (p *Promotion) AuthorID() uuid.UUID   { return p.authorID }
func (p *Promotion) Route() Route          { return p.route }
func (p *Promotion) Payment() PaymentTerms { return p.payment }
func (p *Promotion) Discount() Discount    { return p.discount }
func (p *Promotion) IsPremium() bool       { return p.isPremium }
func (p *Promotion) Details() Details      { return p.details }
func (p *Promotion) Link() string          { return p.link }
func (p *Promotion) CreatedAt() time.Time  { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time  { return p.updatedAt }
