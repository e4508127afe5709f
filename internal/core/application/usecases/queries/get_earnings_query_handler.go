package queries

import (
	"context"

	"escrow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetEarningsQueryHandler computes the earnings aggregates in one pass
// over the orders table.
type GetEarningsQueryHandler struct {
	db *gorm.DB
}

// NewGetEarningsQueryHandler creates a handler for earnings queries.
func NewGetEarningsQueryHandler(db *gorm.DB) GetEarningsQueryHandler {
	return GetEarningsQueryHandler{db: db}
}

// Handle executes the earnings aggregation.
func (h GetEarningsQueryHandler) Handle(
	ctx context.Context,
	query GetEarningsQuery,
) (GetEarningsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEarningsQueryResponse{}, err
	}

	var (
		total    decimal.Decimal
		pending  decimal.Decimal
		reserved decimal.Decimal
		active   int
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0),
			COALESCE(SUM(remaining_amount) FILTER (WHERE status IN (?, ?)), 0),
			COALESCE(SUM(advance_amount) FILTER (WHERE status = ?), 0),
			COUNT(*) FILTER (WHERE status != ?)
		FROM orders
	`,
		order.FinalPaymentDone,
		order.InProduction, order.FinalPaymentPending,
		order.PaymentReserved,
		order.FinalPaymentDone,
	).Row()

	if err := row.Scan(&total, &pending, &reserved, &active); err != nil {
		return GetEarningsQueryResponse{}, err
	}

	return GetEarningsQueryResponse{
		TotalEarnings:   total,
		PendingEarnings: pending,
		ReservedFunds:   reserved,
		ActiveOrders:    active,
	}, nil
}
