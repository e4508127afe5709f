package queries

import (
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by identifier. This is the read
// model behind the client's shareable payment link.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a single-order query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
