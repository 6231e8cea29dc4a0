// Package memstore is the in-process entity store selected with
// DB_DRIVER=memory. It enforces the same keys and references as the schema in
// migrations/ and reports failures with the same infra kinds.
package memstore

import (
	"context"
	"sync"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"
	"flightdeals/internal/usecase/shared"

	"github.com/google/uuid"
)

type dataset struct {
	profiles       map[uuid.UUID]profile.Profile
	promotions     map[int64]promotion.Promotion
	bookmarks      map[int64]bookmark.Bookmark
	bookmarkByPair map[bookmark.Key]int64
	orders         map[uuid.UUID]order.Order
	nextPromotion  int64
	nextBookmark   int64
}

func newDataset() *dataset {
	return &dataset{
		profiles:       map[uuid.UUID]profile.Profile{},
		promotions:     map[int64]promotion.Promotion{},
		bookmarks:      map[int64]bookmark.Bookmark{},
		bookmarkByPair: map[bookmark.Key]int64{},
		orders:         map[uuid.UUID]order.Order{},
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		profiles:       make(map[uuid.UUID]profile.Profile, len(d.profiles)),
		promotions:     make(map[int64]promotion.Promotion, len(d.promotions)),
		bookmarks:      make(map[int64]bookmark.Bookmark, len(d.bookmarks)),
		bookmarkByPair: make(map[bookmark.Key]int64, len(d.bookmarkByPair)),
		orders:         make(map[uuid.UUID]order.Order, len(d.orders)),
		nextPromotion:  d.nextPromotion,
		nextBookmark:   d.nextBookmark,
	}
	for k, v := range d.profiles {
		c.profiles[k] = v
	}
	for k, v := range d.promotions {
		c.promotions[k] = v
	}
	for k, v := range d.bookmarks {
		c.bookmarks[k] = v
	}
	for k, v := range d.bookmarkByPair {
		c.bookmarkByPair[k] = v
	}
	for k, v := range d.orders {
		c.orders[k] = v
	}
	return c
}

// Store is safe for concurrent use. A transaction holds the store lock for its
// whole duration, so transactions are serializable.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

func New() *Store {
	return &Store{data: newDataset()}
}

// Within runs fn against a snapshot that replaces the live data only when fn
// succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	work := s.data.clone()
	if err := fn(ctx, &view{store: s, data: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) Repositories() shared.Repositories {
	return &view{store: s}
}

// read runs fn under the lock unless the view already belongs to a transaction.
func (v *view) read(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr("store call aborted", err)
	}
	if v.data != nil {
		return fn(v.data)
	}
	v.store.mu.Lock()
	defer v.store.mu.Unlock()
	return fn(v.store.data)
}

// view is either bound to a transaction snapshot (data set) or to the live
// dataset with per-call locking.
type view struct {
	store *Store
	data  *dataset
}

func (v *view) Promotions() shared.PromotionRepository { return promotionRepo{v} }
func (v *view) Profiles() shared.ProfileRepository     { return profileRepo{v} }
func (v *view) Bookmarks() shared.BookmarkRepository   { return bookmarkRepo{v} }
func (v *view) Orders() shared.OrderRepository         { return orderRepo{v} }

// SeedOrder inserts an order as the payment webhook would.
func (s *Store) SeedOrder(o order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.data.orders[o.ID] = o
}
