package bookmark

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a user's saved reference to a promotion. At most one exists per
// (UserID, PromotionID); the store enforces it with a unique index.
type Bookmark struct {
	ID          int64
	UserID      uuid.UUID
	PromotionID int64
	CreatedAt   time.Time
}

type Key struct {
	UserID      uuid.UUID
	PromotionID int64
}

func (b *Bookmark) Key() Key {
	return Key{UserID: b.UserID, PromotionID: b.PromotionID}
}
