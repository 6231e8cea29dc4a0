package queries

import (
	"context"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/promotion"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/shared"
)

var ErrPromotionNotFound = errs.NotFound(errs.New("promotion not found"))

type PromotionQueries interface {
	List(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[PromotionView], error)
	Get(ctx context.Context, viewer access.Viewer, id int64) (*PromotionView, error)
	ListSaved(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[SavedPromotionView], error)
}

type promotionQueriesImpl struct {
	engine  *Engine
	sources Sources
	uow     shared.UnitOfWork
}

func NewPromotionQueries(engine *Engine, sources Sources, uow shared.UnitOfWork) PromotionQueries {
	return &promotionQueriesImpl{engine: engine, sources: sources, uow: uow}
}

// List returns every matching promotion. Premium rows stay in the list for
// free viewers and are redacted instead of omitted.
func (q *promotionQueriesImpl) List(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[PromotionView], error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	page, err := Run(ctx, q.engine, PromotionSchema, q.sources.Promotions, req)
	if err != nil {
		return nil, err
	}
	return Map(page, func(p *promotion.Promotion) PromotionView {
		return RenderPromotion(p, viewer.DecideFor(p))
	}), nil
}

func (q *promotionQueriesImpl) Get(ctx context.Context, viewer access.Viewer, id int64) (*PromotionView, error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	p, err := shared.StoreCall(ctx, q.engine.timeout, func(ctx context.Context) (*promotion.Promotion, error) {
		return q.uow.Repositories().Promotions().FindByID(ctx, id)
	})
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	view := RenderPromotion(p, viewer.DecideFor(p))
	return &view, nil
}

func (q *promotionQueriesImpl) ListSaved(ctx context.Context, viewer access.Viewer, req ListRequest) (*Page[SavedPromotionView], error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	owner := Predicate{Column: ColumnOwnerID, Op: OpEq, Values: []any{viewer.UserID}}
	page, err := Run(ctx, q.engine, SavedSchema, q.sources.Saved, req, owner)
	if err != nil {
		return nil, err
	}
	return Map(page, func(s SavedPromotion) SavedPromotionView {
		return SavedPromotionView{
			BookmarkID: s.BookmarkID,
			SavedAt:    s.SavedAt,
			Promotion:  RenderPromotion(s.Promotion, viewer.DecideFor(s.Promotion)),
		}
	}), nil
}
