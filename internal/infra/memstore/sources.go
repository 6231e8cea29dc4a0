package memstore

import (
	"context"
	"sort"

	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"
	"flightdeals/internal/usecase/queries"

	"github.com/google/uuid"
)

// Sources returns list sources that evaluate predicates with the same
// semantics the postgres readstore renders into SQL.
func (s *Store) Sources() queries.Sources {
	return queries.Sources{
		Users:      &source[*profile.Profile]{store: s, name: "users", rows: profileRows},
		Promotions: &source[*promotion.Promotion]{store: s, name: "promotions", rows: promotionRows},
		Orders:     &source[*order.Order]{store: s, name: "orders", rows: orderRows},
		Saved:      &source[queries.SavedPromotion]{store: s, name: "saved promotions", rows: savedRows},
	}
}

type row[T any] struct {
	queries.Columnar
	item T
}

type source[T any] struct {
	store *Store
	name  string
	rows  func(d *dataset) []row[T]
}

func (s *source[T]) filtered(ctx context.Context, preds []queries.Predicate) ([]row[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list "+s.name, err)
	}
	s.store.mu.Lock()
	all := s.rows(s.store.data)
	s.store.mu.Unlock()

	out := all[:0]
	for _, r := range all {
		if queries.Matches(preds, r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *source[T]) Count(ctx context.Context, preds []queries.Predicate) (int, error) {
	rows, err := s.filtered(ctx, preds)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *source[T]) Select(ctx context.Context, preds []queries.Predicate, by queries.Sort, limit, offset int) ([]T, error) {
	if limit < 1 || offset < 0 {
		return []T{}, nil
	}
	rows, err := s.filtered(ctx, preds)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return queries.LessBy(by, rows[i], rows[j])
	})

	out := make([]T, 0, limit)
	for i := offset; i < len(rows) && len(out) < limit; i++ {
		out = append(out, rows[i].item)
	}
	return out, nil
}

func profileRows(d *dataset) []row[*profile.Profile] {
	out := make([]row[*profile.Profile], 0, len(d.profiles))
	for _, p := range d.profiles {
		out = append(out, row[*profile.Profile]{Columnar: profileColumns{&p}, item: &p})
	}
	return out
}

func promotionRows(d *dataset) []row[*promotion.Promotion] {
	out := make([]row[*promotion.Promotion], 0, len(d.promotions))
	for _, p := range d.promotions {
		out = append(out, row[*promotion.Promotion]{Columnar: promotionColumns{&p}, item: &p})
	}
	return out
}

func orderRows(d *dataset) []row[*order.Order] {
	out := make([]row[*order.Order], 0, len(d.orders))
	for _, o := range d.orders {
		out = append(out, row[*order.Order]{Columnar: orderColumns{&o}, item: &o})
	}
	return out
}

func savedRows(d *dataset) []row[queries.SavedPromotion] {
	out := make([]row[queries.SavedPromotion], 0, len(d.bookmarks))
	for _, b := range d.bookmarks {
		p, ok := d.promotions[b.PromotionID]
		if !ok {
			continue
		}
		saved := queries.SavedPromotion{BookmarkID: b.ID, SavedAt: b.CreatedAt, Promotion: &p}
		out = append(out, row[queries.SavedPromotion]{Columnar: savedColumns{saved, b.UserID}, item: saved})
	}
	return out
}

type profileColumns struct{ p *profile.Profile }

func (c profileColumns) Column(name string) any {
	p := c.p
	switch name {
	case "id":
		return p.ID()
	case "name":
		return p.Name()
	case "email":
		return p.Email()
	case "phone":
		return optional(p.Phone())
	case "is_premium":
		return p.IsPremium()
	case "premium_expires_at":
		return optional(p.PremiumExpiresAt())
	case "is_admin":
		return p.IsAdmin()
	case "created_at":
		return p.CreatedAt()
	case "updated_at":
		return p.UpdatedAt()
	}
	return nil
}

type promotionColumns struct{ p *promotion.Promotion }

func (c promotionColumns) Column(name string) any {
	p := c.p
	switch name {
	case "id":
		return p.ID()
	case "author_id":
		return p.AuthorID()
	case "origin":
		return p.Route().From()
	case "destination":
		return p.Route().To()
	case "payment_type":
		return string(p.Payment().Type())
	case "price":
		if cash, ok := p.Payment().(promotion.Cash); ok {
			return cash.Amount
		}
		return nil
	case "miles":
		if miles, ok := p.Payment().(promotion.Miles); ok {
			return miles.Amount
		}
		return nil
	case "discount":
		return int64(p.Discount().Value())
	case "is_premium":
		return p.IsPremium()
	case "airline":
		return p.Details().Airline
	case "trip_type":
		return string(p.Details().TripType)
	case "travel_class":
		return string(p.Details().TravelClass)
	case "created_at":
		return p.CreatedAt()
	case "updated_at":
		return p.UpdatedAt()
	}
	return nil
}

type savedColumns struct {
	saved   queries.SavedPromotion
	ownerID uuid.UUID
}

func (c savedColumns) Column(name string) any {
	switch name {
	case "bookmark_id":
		return c.saved.BookmarkID
	case queries.ColumnOwnerID:
		return c.ownerID
	case queries.ColumnSavedAt:
		return c.saved.SavedAt
	}
	return promotionColumns{c.saved.Promotion}.Column(name)
}

type orderColumns struct{ o *order.Order }

func (c orderColumns) Column(name string) any {
	o := c.o
	switch name {
	case "id":
		return o.ID
	case "user_id":
		return o.UserID
	case "plan":
		return o.Plan
	case "amount":
		return o.Amount
	case "currency":
		return o.Currency
	case "status":
		return string(o.Status)
	case "created_at":
		return o.CreatedAt
	case "updated_at":
		return o.UpdatedAt
	}
	return nil
}

// optional keeps absent nullable columns as an untyped nil so predicates and
// ordering treat them as NULL.
func optional[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
