package errs

import cr "github.com/cockroachdb/errors"

// Outcome classes shared by every use case. Errors are marked with one of these
// so transports can map them without knowing the concrete error.
var (
	ErrNotFound        = cr.New("not found")
	ErrForbidden       = cr.New("forbidden")
	ErrUnauthenticated = cr.New("unauthenticated")
	ErrConflict        = cr.New("conflict")
	ErrTransient       = cr.New("transient store error")
	ErrValidation      = cr.New("validation error")
)

func NewValidation(msg string) error {
	return cr.Mark(cr.New(msg), ErrValidation)
}

func NotFound(err error) error        { return Mark(err, ErrNotFound) }
func Forbidden(err error) error       { return Mark(err, ErrForbidden) }
func Conflict(err error) error        { return Mark(err, ErrConflict) }
func Transient(err error) error       { return Mark(err, ErrTransient) }
func Validation(err error) error      { return Mark(err, ErrValidation) }
func Unauthenticated(err error) error { return Mark(err, ErrUnauthenticated) }
