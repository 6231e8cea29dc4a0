package commands

import (
	"context"
	"log/slog"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/bookmark"
	"flightdeals/internal/infra"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/shared"
)

type BookmarkStatus struct {
	PromotionID int64
	State       bookmark.State
	BookmarkID  *int64
}

type BookmarkCommands interface {
	Check(ctx context.Context, viewer access.Viewer, session string, promotionID int64) (*BookmarkStatus, error)
	Toggle(ctx context.Context, viewer access.Viewer, session string, promotionID int64, bookmarkID *int64) (*BookmarkStatus, error)
}

type bookmarkUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	timeout     time.Duration
	coordinator *Coordinator
}

func NewBookmarkUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, m *metrics.Metrics) BookmarkCommands {
	return &bookmarkUseCaseImpl{
		uow:     uow,
		clock:   clk,
		timeout: cfg.Store.Timeout,
		coordinator: NewCoordinator(func(s Settlement) {
			m.ObserveBookmark(s.Action, settlementOutcome(s))
		}),
	}
}

func settlementOutcome(s Settlement) string {
	switch {
	case s.Err == nil:
		return s.State.String()
	case errs.Is(s.Err, bookmark.ErrBusy):
		return "BUSY"
	default:
		return "FAILED"
	}
}

func (uc *bookmarkUseCaseImpl) Check(ctx context.Context, viewer access.Viewer, session string, promotionID int64) (*BookmarkStatus, error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	key := SessionKey{Session: session, Key: bookmark.Key{UserID: viewer.UserID, PromotionID: promotionID}}
	return uc.coordinator.Check(ctx, key, uc)
}

func (uc *bookmarkUseCaseImpl) Toggle(ctx context.Context, viewer access.Viewer, session string, promotionID int64, bookmarkID *int64) (*BookmarkStatus, error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	key := SessionKey{Session: session, Key: bookmark.Key{UserID: viewer.UserID, PromotionID: promotionID}}
	return uc.coordinator.Toggle(ctx, key, bookmarkID, uc)
}

func (uc *bookmarkUseCaseImpl) find(ctx context.Context, key bookmark.Key) (*int64, error) {
	b, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*bookmark.Bookmark, error) {
		return uc.uow.Repositories().Bookmarks().FindByPair(ctx, key.UserID, key.PromotionID)
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b.ID, nil
}

// add writes the pair outside a transaction so a duplicate-key failure leaves
// the connection usable for the follow-up lookup.
func (uc *bookmarkUseCaseImpl) add(ctx context.Context, key bookmark.Key) (int64, error) {
	repo := uc.uow.Repositories().Bookmarks()
	id, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (int64, error) {
		return repo.Insert(ctx, key.UserID, key.PromotionID, uc.clock.Now())
	})
	switch {
	case err == nil:
		return id, nil
	case errs.Is(err, errs.ErrConflict):
		existing, ferr := uc.find(ctx, key)
		if ferr != nil {
			return 0, ferr
		}
		if existing == nil {
			// removed by another session between the insert and the lookup
			return 0, errs.Transient(errs.New("bookmark changed concurrently"))
		}
		slog.DebugContext(ctx, "bookmark already saved, reconciled",
			"user_id", key.UserID.String(),
			"promotion_id", key.PromotionID,
			"bookmark_id", *existing)
		return *existing, nil
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return 0, errs.NotFound(errs.Wrap(err, "promotion no longer available"))
	default:
		return 0, err
	}
}

// remove deletes by identifier, scoped to the key's user and promotion, so a
// row written by a concurrent add from another session is left alone. When
// nothing was deleted the pair is looked up: absent counts as removed, while a
// row under another id means bookmarkID is stale or names another promotion.
func (uc *bookmarkUseCaseImpl) remove(ctx context.Context, key bookmark.Key, bookmarkID int64) error {
	deleted, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (bool, error) {
		return uc.uow.Repositories().Bookmarks().DeleteOwned(ctx, bookmarkID, key)
	})
	if err != nil || deleted {
		return err
	}
	current, err := uc.find(ctx, key)
	if err != nil {
		return err
	}
	if current != nil {
		return ErrBookmarkMismatch
	}
	return nil
}
