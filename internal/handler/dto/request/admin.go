package request

import "time"

type UpdateSubscriptionRequest struct {
	IsPremium *bool      `json:"is_premium" binding:"required"`
	ExpiresAt *time.Time `json:"premium_expires_at"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
