package order

import (
	"strings"
	"time"

	"flightdeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidStatus = errs.NewValidation("invalid order status")

// Status values are written by the payment webhook collaborator; admins may
// correct them.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusPaid, StatusFailed, StatusRefunded, StatusCancelled}

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Statuses {
		if v == st {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Plan      string
	Amount    decimal.Decimal
	Currency  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
