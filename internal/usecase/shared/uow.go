package shared

import (
	"context"
	"time"

	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one transaction around fn. Retries follow DB_TX_RETRIES and are off by default.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Repositories: single-statement access outside any transaction
	Repositories() Repositories
}

type Repositories interface {
	Promotions() PromotionRepository
	Profiles() ProfileRepository
	Bookmarks() BookmarkRepository
	Orders() OrderRepository
}

type Tx interface {
	Repositories
}

type PromotionRepository interface {
	FindByID(ctx context.Context, id int64) (*promotion.Promotion, error)
	Create(ctx context.Context, p *promotion.Promotion) (int64, error)
	Update(ctx context.Context, p *promotion.Promotion) error
	// Lock holds the row until the transaction ends so no bookmark can be
	// added while it is being deleted.
	Lock(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	// Create reports false when a profile with the same id already exists.
	Create(ctx context.Context, p *profile.Profile) (bool, error)
	Update(ctx context.Context, p *profile.Profile) error
	Lock(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookmarkRepository interface {
	// Insert fails with KindDuplicateKey when the pair is already saved.
	Insert(ctx context.Context, userID uuid.UUID, promotionID int64, now time.Time) (int64, error)
	FindByPair(ctx context.Context, userID uuid.UUID, promotionID int64) (*bookmark.Bookmark, error)
	// DeleteOwned reports false when no bookmark with that id belongs to the
	// key's user and promotion.
	DeleteOwned(ctx context.Context, id int64, key bookmark.Key) (bool, error)
	CountByPromotion(ctx context.Context, promotionID int64) (int64, error)
	DeleteByPromotion(ctx context.Context, promotionID int64) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, now time.Time) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
