package converter

import (
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func paymentColumns(p promotion.PaymentTerms) (pgtype.Numeric, pgtype.Int8) {
	switch v := p.(type) {
	case promotion.Cash:
		return pgconv.DecimalToNumeric(v.Amount), pgtype.Int8{}
	case promotion.Miles:
		return pgtype.Numeric{}, pgtype.Int8{Int64: v.Amount, Valid: true}
	}
	return pgtype.Numeric{}, pgtype.Int8{}
}

func terms(t []string) []string {
	if t == nil {
		return []string{}
	}
	return t
}

func PromotionToCreateParams(p *promotion.Promotion) sqlc.CreatePromotionParams {
	price, miles := paymentColumns(p.Payment())
	d := p.Details()
	return sqlc.CreatePromotionParams{
		AuthorID:    p.AuthorID(),
		Origin:      p.Route().From(),
		Destination: p.Route().To(),
		PaymentType: string(p.Payment().Type()),
		Price:       price,
		Miles:       miles,
		Discount:    int32(p.Discount().Value()), // #nosec G115 -- bounded 0..100 by the domain
		IsPremium:   p.IsPremium(),
		Airline:     d.Airline,
		Dates:       d.Dates,
		Times:       d.Times,
		Baggage:     d.Baggage,
		Stopover:    d.Stopover,
		Duration:    d.Duration,
		Description: d.Description,
		Terms:       terms(d.Terms),
		TripType:    string(d.TripType),
		TravelClass: string(d.TravelClass),
		Link:        p.Link(),
		CreatedAt:   pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PromotionToUpdateParams(p *promotion.Promotion) sqlc.UpdatePromotionParams {
	c := PromotionToCreateParams(p)
	return sqlc.UpdatePromotionParams{
		ID:          p.ID(),
		Origin:      c.Origin,
		Destination: c.Destination,
		PaymentType: c.PaymentType,
		Price:       c.Price,
		Miles:       c.Miles,
		Discount:    c.Discount,
		IsPremium:   c.IsPremium,
		Airline:     c.Airline,
		Dates:       c.Dates,
		Times:       c.Times,
		Baggage:     c.Baggage,
		Stopover:    c.Stopover,
		Duration:    c.Duration,
		Description: c.Description,
		Terms:       c.Terms,
		TripType:    c.TripType,
		TravelClass: c.TravelClass,
		Link:        c.Link,
		UpdatedAt:   c.UpdatedAt,
	}
}

// PromotionFromRow rebuilds the aggregate. Rows violating the payment variant
// are reported rather than repaired.
func PromotionFromRow(row sqlc.Promotions) (*promotion.Promotion, error) {
	route, err := promotion.NewRoute(row.Origin, row.Destination)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %d", row.ID)
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %d price", row.ID)
	}
	payment, err := promotion.NewPaymentTerms(row.PaymentType, price, pgconv.Int8PtrFromPgtype(row.Miles))
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %d payment", row.ID)
	}
	discount, err := promotion.NewDiscount(int(row.Discount))
	if err != nil {
		return nil, errs.Wrapf(err, "promotion %d", row.ID)
	}

	details := promotion.Details{
		Airline:     row.Airline,
		Dates:       row.Dates,
		Times:       row.Times,
		Baggage:     row.Baggage,
		Stopover:    row.Stopover,
		Duration:    row.Duration,
		Description: row.Description,
		Terms:       row.Terms,
		TripType:    promotion.TripType(row.TripType),
		TravelClass: promotion.TravelClass(row.TravelClass),
	}
	return promotion.Reconstruct(
		row.ID,
		row.AuthorID,
		route,
		payment,
		discount,
		row.IsPremium,
		details,
		row.Link,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
