package queries

import (
	"context"

	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. An unknown identifier yields an
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
		query.OrderID().String(),
	).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return scanOrderRow(rows)
}
