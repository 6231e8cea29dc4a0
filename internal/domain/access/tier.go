package access

import (
	"time"

	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"

	"github.com/google/uuid"
)

type ViewerTier string

const (
	TierAnonymous ViewerTier = "anonymous"
	TierFree      ViewerTier = "free"
	TierPremium   ViewerTier = "premium"
	TierAdmin     ViewerTier = "admin"
)

type ContentTier string

const (
	ContentFree    ContentTier = "free"
	ContentPremium ContentTier = "premium"
)

// TierOf derives the viewer tier from a stored profile at now. A nil profile
// is anonymous. Admin outranks premium; premium honours the expiry timestamp.
func TierOf(p *profile.Profile, now time.Time) ViewerTier {
	switch {
	case p == nil:
		return TierAnonymous
	case p.IsAdmin():
		return TierAdmin
	case p.PremiumActiveAt(now):
		return TierPremium
	default:
		return TierFree
	}
}

func ContentTierOf(p *promotion.Promotion) ContentTier {
	if p.IsPremium() {
		return ContentPremium
	}
	return ContentFree
}

// Viewer is resolved per request and passed explicitly to every read path.
type Viewer struct {
	UserID uuid.UUID
	Tier   ViewerTier
}

func Anonymous() Viewer {
	return Viewer{Tier: TierAnonymous}
}

func ViewerOf(id uuid.UUID, p *profile.Profile, now time.Time) Viewer {
	if p == nil {
		// authenticated but no profile row yet
		return Viewer{UserID: id, Tier: TierFree}
	}
	return Viewer{UserID: id, Tier: TierOf(p, now)}
}

func (v Viewer) Authenticated() bool {
	return v.Tier != TierAnonymous && v.UserID != uuid.Nil
}

func (v Viewer) IsAdmin() bool {
	return v.Tier == TierAdmin
}
