package response

import (
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// MeResponse is the caller's own profile with the tier it is served at right now.
type MeResponse struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            *string           `json:"phone"`
	IsPremium        bool              `json:"is_premium"`
	PremiumExpiresAt *time.Time        `json:"premium_expires_at"`
	PremiumActive    bool              `json:"premium_active"`
	IsAdmin          bool              `json:"is_admin"`
	Tier             access.ViewerTier `json:"tier"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromUserView(v queries.UserView, tier access.ViewerTier) (MeResponse, error) {
	var resp MeResponse
	if err := copier.Copy(&resp, &v); err != nil {
		return MeResponse{}, err
	}
	resp.Tier = tier
	return resp, nil
}
