package queries

import (
	"errors"

	"escrow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetEarningsQueryIsNotConstructed = errors.New(
	"GetEarningsQuery must be created via NewGetEarningsQuery constructor",
)

// GetEarningsQuery retrieves the vendor's earnings dashboard figures.
type GetEarningsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEarningsQuery creates an earnings query.
func NewGetEarningsQuery() GetEarningsQuery {
	return GetEarningsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsQueryIsNotConstructed)
}

// GetEarningsQueryResponse aggregates money across the order book.
//
// TotalEarnings sums the total amount of fully paid orders.
// PendingEarnings sums the remaining amount of orders in production or
// awaiting final payment. ReservedFunds sums the advance amount of orders
// whose advance is held in escrow. ActiveOrders counts orders that have
// not reached the terminal state.
type GetEarningsQueryResponse struct {
	TotalEarnings   decimal.Decimal
	PendingEarnings decimal.Decimal
	ReservedFunds   decimal.Decimal
	ActiveOrders    int
}
