package memstore

import (
	"context"
	"time"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"

	"github.com/google/uuid"
)

type promotionRepo struct{ v *view }

func (r promotionRepo) FindByID(ctx context.Context, id int64) (*promotion.Promotion, error) {
	var out *promotion.Promotion
	err := r.v.read(ctx, func(d *dataset) error {
		p, ok := d.promotions[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
		}
		out = &p
		return nil
	})
	return out, err
}

func (r promotionRepo) Create(ctx context.Context, p *promotion.Promotion) (int64, error) {
	var id int64
	err := r.v.read(ctx, func(d *dataset) error {
		d.nextPromotion++
		id = d.nextPromotion
		stored := *p
		stored.AssignID(id)
		d.promotions[id] = stored
		return nil
	})
	return id, err
}

func (r promotionRepo) Update(ctx context.Context, p *promotion.Promotion) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.promotions[p.ID()]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
		}
		d.promotions[p.ID()] = *p
		return nil
	})
}

func (r promotionRepo) Lock(ctx context.Context, id int64) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.promotions[id]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
		}
		return nil
	})
}

func (r promotionRepo) Delete(ctx context.Context, id int64) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.promotions[id]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "promotion not found")
		}
		for _, b := range d.bookmarks {
			if b.PromotionID == id {
				return infra.NewRepoErr(infra.KindForeignKeyViolated, "promotion is still bookmarked")
			}
		}
		delete(d.promotions, id)
		return nil
	})
}

type profileRepo struct{ v *view }

func (r profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	var out *profile.Profile
	err := r.v.read(ctx, func(d *dataset) error {
		p, ok := d.profiles[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "profile not found")
		}
		out = &p
		return nil
	})
	return out, err
}

func (r profileRepo) Create(ctx context.Context, p *profile.Profile) (bool, error) {
	created := false
	err := r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.profiles[p.ID()]; ok {
			return nil
		}
		d.profiles[p.ID()] = *p
		created = true
		return nil
	})
	return created, err
}

func (r profileRepo) Update(ctx context.Context, p *profile.Profile) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.profiles[p.ID()]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "profile not found")
		}
		d.profiles[p.ID()] = *p
		return nil
	})
}

func (r profileRepo) Lock(ctx context.Context, id uuid.UUID) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.profiles[id]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "profile not found")
		}
		return nil
	})
}

func (r profileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.v.read(ctx, func(d *dataset) error {
		if _, ok := d.profiles[id]; !ok {
			return infra.NewRepoErr(infra.KindNotFound, "profile not found")
		}
		for _, b := range d.bookmarks {
			if b.UserID == id {
				return infra.NewRepoErr(infra.KindForeignKeyViolated, "profile still has bookmarks")
			}
		}
		delete(d.profiles, id)
		return nil
	})
}

type bookmarkRepo struct{ v *view }

func (r bookmarkRepo) Insert(ctx context.Context, userID uuid.UUID, promotionID int64, now time.Time) (int64, error) {
	var id int64
	err := r.v.read(ctx, func(d *dataset) error {
		key := bookmark.Key{UserID: userID, PromotionID: promotionID}
		if _, dup := d.bookmarkByPair[key]; dup {
			return infra.NewRepoErr(infra.KindDuplicateKey, "bookmark already exists")
		}
		if _, ok := d.profiles[userID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "bookmark user does not exist")
		}
		if _, ok := d.promotions[promotionID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "bookmark promotion does not exist")
		}
		d.nextBookmark++
		id = d.nextBookmark
		d.bookmarks[id] = bookmark.Bookmark{ID: id, UserID: userID, PromotionID: promotionID, CreatedAt: now}
		d.bookmarkByPair[key] = id
		return nil
	})
	return id, err
}

func (r bookmarkRepo) FindByPair(ctx context.Context, userID uuid.UUID, promotionID int64) (*bookmark.Bookmark, error) {
	var out *bookmark.Bookmark
	err := r.v.read(ctx, func(d *dataset) error {
		id, ok := d.bookmarkByPair[bookmark.Key{UserID: userID, PromotionID: promotionID}]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "bookmark not found")
		}
		b := d.bookmarks[id]
		out = &b
		return nil
	})
	return out, err
}

func (r bookmarkRepo) DeleteOwned(ctx context.Context, id int64, key bookmark.Key) (bool, error) {
	deleted := false
	err := r.v.read(ctx, func(d *dataset) error {
		b, ok := d.bookmarks[id]
		if !ok || b.Key() != key {
			return nil
		}
		d.removeBookmark(b)
		deleted = true
		return nil
	})
	return deleted, err
}

func (d *dataset) removeBookmark(b bookmark.Bookmark) {
	delete(d.bookmarks, b.ID)
	delete(d.bookmarkByPair, b.Key())
}

func (r bookmarkRepo) countWhere(ctx context.Context, match func(bookmark.Bookmark) bool, remove bool) (int64, error) {
	var n int64
	err := r.v.read(ctx, func(d *dataset) error {
		for _, b := range d.bookmarks {
			if !match(b) {
				continue
			}
			n++
			if remove {
				d.removeBookmark(b)
			}
		}
		return nil
	})
	return n, err
}

func (r bookmarkRepo) CountByPromotion(ctx context.Context, promotionID int64) (int64, error) {
	return r.countWhere(ctx, func(b bookmark.Bookmark) bool { return b.PromotionID == promotionID }, false)
}

func (r bookmarkRepo) DeleteByPromotion(ctx context.Context, promotionID int64) (int64, error) {
	return r.countWhere(ctx, func(b bookmark.Bookmark) bool { return b.PromotionID == promotionID }, true)
}

func (r bookmarkRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, func(b bookmark.Bookmark) bool { return b.UserID == userID }, false)
}

func (r bookmarkRepo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.countWhere(ctx, func(b bookmark.Bookmark) bool { return b.UserID == userID }, true)
}

type orderRepo struct{ v *view }

func (r orderRepo) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var out *order.Order
	err := r.v.read(ctx, func(d *dataset) error {
		o, ok := d.orders[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "order not found")
		}
		out = &o
		return nil
	})
	return out, err
}

func (r orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, now time.Time) error {
	return r.v.read(ctx, func(d *dataset) error {
		o, ok := d.orders[id]
		if !ok {
			return infra.NewRepoErr(infra.KindNotFound, "order not found")
		}
		o.Status = status
		o.UpdatedAt = now
		d.orders[id] = o
		return nil
	})
}

func (r orderRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := r.v.read(ctx, func(d *dataset) error {
		for _, o := range d.orders {
			if o.UserID == userID {
				n++
			}
		}
		return nil
	})
	return n, err
}
