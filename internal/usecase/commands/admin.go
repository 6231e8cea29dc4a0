package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/infra"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/pkg/patch"
	"flightdeals/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotAdmin          = errs.Forbidden(errs.New("admin privileges required"))
	ErrPromotionNotFound = errs.NotFound(errs.New("promotion not found"))
	ErrUserNotFound      = errs.NotFound(errs.New("user not found"))
	ErrOrderNotFound     = errs.NotFound(errs.New("order not found"))
	ErrDeleteSelf        = errs.NewValidation("admins cannot delete their own account")
)

// DependentRowsError aborts a delete whose dependent bookmarks could not be
// removed first. Count is the number found under the row lock.
type DependentRowsError struct {
	Entity string
	ID     string
	Count  int64
	cause  error
}

func (e *DependentRowsError) Error() string {
	return fmt.Sprintf("delete %s %s aborted: %d dependent bookmarks: %v", e.Entity, e.ID, e.Count, e.cause)
}

func (e *DependentRowsError) Unwrap() error { return e.cause }

type DeleteResult struct {
	RemovedBookmarks int64
	// RetainedOrders counts payment records left in place for a deleted user.
	RetainedOrders int64
}

type GrantAdminResult struct {
	Profile      *profile.Profile
	AlreadyAdmin bool
}

// PromotionPatch holds the fields an admin changes; nil keeps the stored value.
// Switching PaymentType drops the amount of the other variant.
type PromotionPatch struct {
	From        *string
	To          *string
	PaymentType *string
	Price       *decimal.Decimal
	Miles       *int64
	Discount    *int
	IsPremium   *bool
	Airline     *string
	Dates       *string
	Times       *string
	Baggage     *string
	Stopover    *string
	Duration    *string
	Description *string
	Terms       *[]string
	TripType    *string
	TravelClass *string
	Link        *string
}

type AdminCommands interface {
	CreatePromotion(ctx context.Context, viewer access.Viewer, params promotion.Params) (*promotion.Promotion, error)
	UpdatePromotion(ctx context.Context, viewer access.Viewer, id int64, p PromotionPatch) (*promotion.Promotion, error)
	DeletePromotion(ctx context.Context, viewer access.Viewer, id int64) (*DeleteResult, error)
	DeleteUser(ctx context.Context, viewer access.Viewer, userID uuid.UUID) (*DeleteResult, error)
	GrantAdmin(ctx context.Context, viewer access.Viewer, userID uuid.UUID) (*GrantAdminResult, error)
	UpdateSubscription(ctx context.Context, viewer access.Viewer, userID uuid.UUID, isPremium bool, expiresAt *time.Time) (*profile.Profile, error)
	UpdateOrderStatus(ctx context.Context, viewer access.Viewer, orderID uuid.UUID, status string) (*order.Order, error)
}

type adminUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	timeout     time.Duration
	metrics     *metrics.Metrics
	invalidator CacheInvalidator
}

func NewAdminUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, m *metrics.Metrics, inv CacheInvalidator) AdminCommands {
	return &adminUseCaseImpl{
		uow:         uow,
		clock:       clk,
		timeout:     cfg.Store.Timeout,
		metrics:     m,
		invalidator: inv,
	}
}

// run gates fn on the actor's stored admin flag, read inside the same
// transaction as the mutation. Failures are returned as is and never retried.
func (uc *adminUseCaseImpl) run(ctx context.Context, viewer access.Viewer, operation string, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	defer func() {
		uc.metrics.ObserveAdmin(operation, metrics.Outcome(err))
	}()
	if !viewer.Authenticated() {
		return shared.ErrLoginRequired
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*profile.Profile, error) {
			return tx.Profiles().FindByID(ctx, viewer.UserID)
		})
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return ErrNotAdmin
			}
			return err
		}
		if !actor.IsAdmin() {
			slog.WarnContext(ctx, "admin mutation rejected",
				"operation", operation,
				"actor_id", viewer.UserID.String())
			return ErrNotAdmin
		}
		return fn(ctx, tx)
	})
}

func (uc *adminUseCaseImpl) CreatePromotion(ctx context.Context, viewer access.Viewer, params promotion.Params) (*promotion.Promotion, error) {
	var created *promotion.Promotion
	err := uc.run(ctx, viewer, "create_promotion", func(ctx context.Context, tx shared.Tx) error {
		params.AuthorID = viewer.UserID
		p, err := promotion.New(params, uc.clock.Now())
		if err != nil {
			return err
		}
		id, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (int64, error) {
			return tx.Promotions().Create(ctx, p)
		})
		if err != nil {
			return err
		}
		p.AssignID(id)
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *adminUseCaseImpl) UpdatePromotion(ctx context.Context, viewer access.Viewer, id int64, pt PromotionPatch) (*promotion.Promotion, error) {
	var updated *promotion.Promotion
	err := uc.run(ctx, viewer, "update_promotion", func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.findPromotion(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := p.Revise(applyPromotionPatch(p.Params(), pt), uc.clock.Now()); err != nil {
			return err
		}
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Promotions().Update(ctx, p)
		}); err != nil {
			return notFoundAs(err, ErrPromotionNotFound)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyPromotionPatch(cur promotion.Params, pt PromotionPatch) promotion.Params {
	next := cur
	next.From = patch.Coalesce(pt.From, cur.From)
	next.To = patch.Coalesce(pt.To, cur.To)
	next.PaymentType = patch.Coalesce(pt.PaymentType, cur.PaymentType)
	next.Price = patch.Replace(pt.Price, cur.Price)
	next.Miles = patch.Replace(pt.Miles, cur.Miles)
	switch promotion.PaymentType(next.PaymentType) {
	case promotion.PaymentCash:
		next.Miles = nil
	case promotion.PaymentMiles:
		next.Price = nil
	}
	next.Discount = patch.Coalesce(pt.Discount, cur.Discount)
	next.IsPremium = patch.Coalesce(pt.IsPremium, cur.IsPremium)
	next.Airline = patch.Coalesce(pt.Airline, cur.Airline)
	next.Dates = patch.Coalesce(pt.Dates, cur.Dates)
	next.Times = patch.Coalesce(pt.Times, cur.Times)
	next.Baggage = patch.Coalesce(pt.Baggage, cur.Baggage)
	next.Stopover = patch.Coalesce(pt.Stopover, cur.Stopover)
	next.Duration = patch.Coalesce(pt.Duration, cur.Duration)
	next.Description = patch.Coalesce(pt.Description, cur.Description)
	next.Terms = patch.Coalesce(pt.Terms, cur.Terms)
	next.TripType = patch.Coalesce(pt.TripType, cur.TripType)
	next.TravelClass = patch.Coalesce(pt.TravelClass, cur.TravelClass)
	next.Link = patch.Coalesce(pt.Link, cur.Link)
	return next
}

// DeletePromotion locks the promotion, removes its bookmarks, then deletes it.
func (uc *adminUseCaseImpl) DeletePromotion(ctx context.Context, viewer access.Viewer, id int64) (*DeleteResult, error) {
	var result DeleteResult
	err := uc.run(ctx, viewer, "delete_promotion", func(ctx context.Context, tx shared.Tx) error {
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Promotions().Lock(ctx, id)
		}); err != nil {
			return notFoundAs(err, ErrPromotionNotFound)
		}
		dependents := dependentRows{entity: "promotion", id: fmt.Sprint(id)}
		removed, err := uc.removeDependents(ctx, &dependents,
			func(ctx context.Context) (int64, error) { return tx.Bookmarks().CountByPromotion(ctx, id) },
			func(ctx context.Context) (int64, error) { return tx.Bookmarks().DeleteByPromotion(ctx, id) },
		)
		if err != nil {
			return err
		}
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Promotions().Delete(ctx, id)
		}); err != nil {
			return dependents.fail(err)
		}
		result.RemovedBookmarks = removed
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "promotion deleted",
		"actor_id", viewer.UserID.String(),
		"promotion_id", id,
		"removed_bookmarks", result.RemovedBookmarks)
	return &result, nil
}

// DeleteUser removes the user's bookmarks, then the profile. Orders are kept
// for payment history and reported back.
func (uc *adminUseCaseImpl) DeleteUser(ctx context.Context, viewer access.Viewer, userID uuid.UUID) (*DeleteResult, error) {
	if viewer.UserID == userID {
		return nil, ErrDeleteSelf
	}
	var result DeleteResult
	err := uc.run(ctx, viewer, "delete_user", func(ctx context.Context, tx shared.Tx) error {
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Profiles().Lock(ctx, userID)
		}); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		orders, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (int64, error) {
			return tx.Orders().CountByUser(ctx, userID)
		})
		if err != nil {
			return err
		}
		dependents := dependentRows{entity: "user", id: userID.String()}
		removed, err := uc.removeDependents(ctx, &dependents,
			func(ctx context.Context) (int64, error) { return tx.Bookmarks().CountByUser(ctx, userID) },
			func(ctx context.Context) (int64, error) { return tx.Bookmarks().DeleteByUser(ctx, userID) },
		)
		if err != nil {
			return err
		}
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Profiles().Delete(ctx, userID)
		}); err != nil {
			return dependents.fail(err)
		}
		result = DeleteResult{RemovedBookmarks: removed, RetainedOrders: orders}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.RetainedOrders > 0 {
		slog.WarnContext(ctx, "deleted user still has orders",
			"actor_id", viewer.UserID.String(),
			"user_id", userID.String(),
			"retained_orders", result.RetainedOrders)
	}
	slog.InfoContext(ctx, "user deleted",
		"actor_id", viewer.UserID.String(),
		"user_id", userID.String(),
		"removed_bookmarks", result.RemovedBookmarks)
	uc.invalidate(ctx, userID)
	return &result, nil
}

type dependentRows struct {
	entity string
	id     string
	count  int64
}

// fail turns an error from the dependent cleanup or the final delete into a
// DependentRowsError. A foreign key hit on the final delete is a conflict.
func (d *dependentRows) fail(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) || errs.Is(err, errs.ErrNotFound) {
		return err
	}
	derr := &DependentRowsError{Entity: d.entity, ID: d.id, Count: d.count, cause: err}
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Conflict(derr)
	}
	return derr
}

func (uc *adminUseCaseImpl) removeDependents(ctx context.Context, d *dependentRows, count, remove func(ctx context.Context) (int64, error)) (int64, error) {
	n, err := shared.StoreCall(ctx, uc.timeout, count)
	if err != nil {
		return 0, err
	}
	d.count = n
	if n == 0 {
		return 0, nil
	}
	removed, err := shared.StoreCall(ctx, uc.timeout, remove)
	if err != nil {
		return 0, d.fail(err)
	}
	return removed, nil
}

func (uc *adminUseCaseImpl) GrantAdmin(ctx context.Context, viewer access.Viewer, userID uuid.UUID) (*GrantAdminResult, error) {
	var result GrantAdminResult
	err := uc.run(ctx, viewer, "grant_admin", func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.findProfile(ctx, tx, userID)
		if err != nil {
			return err
		}
		result.Profile = p
		if !p.GrantAdmin(uc.clock.Now()) {
			result.AlreadyAdmin = true
			return nil
		}
		return shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Profiles().Update(ctx, p)
		})
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "admin granted",
		"actor_id", viewer.UserID.String(),
		"user_id", userID.String(),
		"already_admin", result.AlreadyAdmin)
	return &result, nil
}

func (uc *adminUseCaseImpl) UpdateSubscription(ctx context.Context, viewer access.Viewer, userID uuid.UUID, isPremium bool, expiresAt *time.Time) (*profile.Profile, error) {
	var updated *profile.Profile
	err := uc.run(ctx, viewer, "update_subscription", func(ctx context.Context, tx shared.Tx) error {
		p, err := uc.findProfile(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := p.SetSubscription(isPremium, expiresAt, uc.clock.Now()); err != nil {
			return err
		}
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Profiles().Update(ctx, p)
		}); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *adminUseCaseImpl) UpdateOrderStatus(ctx context.Context, viewer access.Viewer, orderID uuid.UUID, status string) (*order.Order, error) {
	st, err := order.NewStatus(status)
	if err != nil {
		return nil, err
	}
	var updated *order.Order
	err = uc.run(ctx, viewer, "update_order_status", func(ctx context.Context, tx shared.Tx) error {
		o, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*order.Order, error) {
			return tx.Orders().FindByID(ctx, orderID)
		})
		if err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		now := uc.clock.Now()
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Orders().UpdateStatus(ctx, orderID, st, now)
		}); err != nil {
			return notFoundAs(err, ErrOrderNotFound)
		}
		o.Status = st
		o.UpdatedAt = now
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *adminUseCaseImpl) findPromotion(ctx context.Context, tx shared.Tx, id int64) (*promotion.Promotion, error) {
	p, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*promotion.Promotion, error) {
		return tx.Promotions().FindByID(ctx, id)
	})
	return p, notFoundAs(err, ErrPromotionNotFound)
}

func (uc *adminUseCaseImpl) findProfile(ctx context.Context, tx shared.Tx, id uuid.UUID) (*profile.Profile, error) {
	p, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*profile.Profile, error) {
		return tx.Profiles().FindByID(ctx, id)
	})
	return p, notFoundAs(err, ErrUserNotFound)
}

func (uc *adminUseCaseImpl) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := uc.invalidator.Invalidate(ctx, userID); err != nil {
		slog.WarnContext(ctx, "customer cache invalidation failed",
			"user_id", userID.String(),
			"error", err.Error())
	}
}

func notFoundAs(err, target error) error {
	if err != nil && errs.Is(err, errs.ErrNotFound) {
		return target
	}
	return err
}
