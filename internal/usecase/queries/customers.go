package queries

import (
	"context"

	"flightdeals/internal/domain/order"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CustomerDirectory resolves the profile behind an order. A missing profile
// yields nil without error: orders outlive deleted users.
type CustomerDirectory interface {
	CustomerSummary(ctx context.Context, userID uuid.UUID) (*CustomerSummary, error)
}

type profileDirectory struct {
	uow shared.UnitOfWork
}

func NewProfileDirectory(uow shared.UnitOfWork) CustomerDirectory {
	return &profileDirectory{uow: uow}
}

func (d *profileDirectory) CustomerSummary(ctx context.Context, userID uuid.UUID) (*CustomerSummary, error) {
	p, err := d.uow.Repositories().Profiles().FindByID(ctx, userID)
	if err != nil {
		err = shared.ClassifyStoreErr(err)
		if errs.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &CustomerSummary{ID: p.ID(), Name: p.Name(), Email: p.Email()}, nil
}

// resolveCustomers looks up one customer per distinct user with at most
// e.fanOut lookups in flight.
func resolveCustomers(ctx context.Context, e *Engine, dir CustomerDirectory, orders []*order.Order) (map[uuid.UUID]*CustomerSummary, error) {
	ids := make([]uuid.UUID, 0, len(orders))
	seen := make(map[uuid.UUID]struct{}, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.UserID]; ok {
			continue
		}
		seen[o.UserID] = struct{}{}
		ids = append(ids, o.UserID)
	}

	results := make([]*CustomerSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.fanOut)
	for i, id := range ids {
		g.Go(func() error {
			summary, err := shared.StoreCall(gctx, e.timeout, func(ctx context.Context) (*CustomerSummary, error) {
				return dir.CustomerSummary(ctx, id)
			})
			if err != nil {
				return err
			}
			results[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]*CustomerSummary, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	return out, nil
}
