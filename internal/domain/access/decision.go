package access

import "flightdeals/internal/domain/promotion"

type Decision string

const (
	Full     Decision = "FULL"
	Redacted Decision = "REDACTED"
)

// Decide is the only place the visibility rule lives.
func Decide(viewer ViewerTier, content ContentTier) Decision {
	if content == ContentFree {
		return Full
	}
	if viewer == TierPremium || viewer == TierAdmin {
		return Full
	}
	return Redacted
}

func (v Viewer) DecideFor(p *promotion.Promotion) Decision {
	return Decide(v.Tier, ContentTierOf(p))
}
