//go:build unit

package commands_test

import (
	"context"

	"github.com/google/uuid"
)

// recordingInvalidator remembers which customers had their cache entry dropped.
type recordingInvalidator struct {
	invalidated []uuid.UUID
}

func (r *recordingInvalidator) Invalidate(_ context.Context, userID uuid.UUID) error {
	r.invalidated = append(r.invalidated, userID)
	return nil
}
