package repository

import (
	"context"
	"time"

	"flightdeals/internal/domain/order"
	"flightdeals/internal/infra"
	"flightdeals/internal/infra/repository/converter"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
	CountOrdersByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type OrderRepository struct {
	queries OrderQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status, now time.Time) error {
	n, err := r.queries.UpdateOrderStatus(ctx, r.db, sqlc.UpdateOrderStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}
	return nil
}

func (r *OrderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountOrdersByUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders by user", err)
	}
	return n, nil
}
