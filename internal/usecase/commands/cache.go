package commands

import (
	"context"

	"github.com/google/uuid"
)

// CacheInvalidator drops derived copies of a profile after it changes.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(context.Context, uuid.UUID) error { return nil }
