package queries

import (
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
)

// Sources bundles the list capabilities of one storage backend.
type Sources struct {
	Users      Source[*profile.Profile]
	Promotions Source[*promotion.Promotion]
	Orders     Source[*order.Order]
	Saved      Source[SavedPromotion]
}
