package shared

import (
	"context"
	"errors"
	"time"

	"flightdeals/internal/infra"
	"flightdeals/internal/pkg/errs"
)

// ClassifyStoreErr maps repository kinds onto the error markers the handlers
// translate into status codes. Unclassified failures pass through unchanged.
func ClassifyStoreErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		infra.IsKind(err, infra.KindTimeout),
		infra.IsKind(err, infra.KindUnavailable):
		return errs.Transient(err)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.NotFound(err)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Conflict(err)
	}
	return err
}

// StoreCall runs fn under the store timeout and classifies its error.
func StoreCall[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	v, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, ClassifyStoreErr(err)
	}
	return v, nil
}

func StoreExec(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	_, err := StoreCall(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
