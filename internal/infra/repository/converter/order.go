package converter

import (
	"flightdeals/internal/domain/order"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s amount", row.ID)
	}
	if amount == nil {
		amount = &decimal.Zero
	}
	return &order.Order{
		ID:        row.ID,
		UserID:    row.UserID,
		Plan:      row.Plan,
		Amount:    *amount,
		Currency:  row.Currency,
		Status:    order.Status(row.Status),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
