package shared

import (
	"flightdeals/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLoginRequired = errs.Unauthenticated(errs.New("login required"))

// Identity is what the external identity provider asserts about the caller.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Email  string
}
