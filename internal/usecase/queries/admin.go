package queries

import (
	"context"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/order"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/shared"
)

var ErrAdminOnly = errs.Forbidden(errs.New("admin access required"))

// AdminQueries backs the back-office list views. Admins always receive FULL
// promotion views.
type AdminQueries interface {
	ListUsers(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[UserView], error)
	ListPromotions(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[PromotionView], error)
	ListOrders(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[OrderView], error)
}

type adminQueriesImpl struct {
	engine    *Engine
	sources   Sources
	customers CustomerDirectory
}

func NewAdminQueries(engine *Engine, sources Sources, customers CustomerDirectory) AdminQueries {
	return &adminQueriesImpl{engine: engine, sources: sources, customers: customers}
}

func (q *adminQueriesImpl) authorize(viewer access.Viewer) error {
	if !viewer.Authenticated() {
		return shared.ErrLoginRequired
	}
	if !viewer.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

func (q *adminQueriesImpl) ListUsers(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[UserView], error) {
	if err := q.authorize(viewer); err != nil {
		return nil, err
	}
	page, err := Run(ctx, q.engine, UserSchema, q.sources.Users, req)
	if err != nil {
		return nil, err
	}
	now := q.engine.Now()
	return Map(page, func(p *profile.Profile) UserView {
		return RenderUser(p, now)
	}), nil
}

func (q *adminQueriesImpl) ListPromotions(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[PromotionView], error) {
	if err := q.authorize(viewer); err != nil {
		return nil, err
	}
	page, err := Run(ctx, q.engine, PromotionSchema, q.sources.Promotions, req)
	if err != nil {
		return nil, err
	}
	return Map(page, func(p *promotion.Promotion) PromotionView {
		return RenderPromotion(p, viewer.DecideFor(p))
	}), nil
}

func (q *adminQueriesImpl) ListOrders(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[OrderView], error) {
	if err := q.authorize(viewer); err != nil {
		return nil, err
	}
	page, err := Run(ctx, q.engine, OrderSchema, q.sources.Orders, req)
	if err != nil {
		return nil, err
	}
	customers, err := resolveCustomers(ctx, q.engine, q.customers, page.Rows)
	if err != nil {
		return nil, err
	}
	return Map(page, func(o *order.Order) OrderView {
		return RenderOrder(o, customers[o.UserID])
	}), nil
}
