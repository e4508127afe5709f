package queries

import (
	"errors"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Sort selects the ordering of the vendor's order list.
type Sort string

const (
	// SortNewest orders by creation time, newest first.
	SortNewest Sort = "newest"
	// SortOldest orders by creation time, oldest first.
	SortOldest Sort = "oldest"
	// SortDeadline orders by production deadline, soonest first. Orders
	// whose production has not started have no deadline and sort last.
	SortDeadline Sort = "deadline"
)

// Validate checks that the sort mode is one of the known values.
func (s Sort) Validate() error {
	switch s {
	case SortNewest, SortOldest, SortDeadline:
		return nil
	}
	return ErrSortIsInvalid
}

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrSortIsInvalid = errors.New("sort must be one of newest, oldest, deadline")
)

// GetOrdersQuery retrieves the vendor's orders with optional text search,
// status filter, and sort mode.
type GetOrdersQuery struct {
	search string
	status *order.Status
	sort   Sort

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order list query. An empty search matches
// everything and a nil status disables the status filter.
func NewGetOrdersQuery(search string, status *order.Status, sort Sort) (GetOrdersQuery, error) {
	if sort == "" {
		sort = SortNewest
	}
	if err := sort.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		search: search,
		status: status,
		sort:   sort,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Search returns the substring to match against client name, phone,
// service type, or order id.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// Status returns the status filter, or nil when all statuses match.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// Sort returns the ordering mode.
func (q GetOrdersQuery) Sort() Sort {
	return q.sort
}

// OrderResponse is the read model of a single order.
type OrderResponse struct {
	ID                     kernel.UUID
	ClientName             string
	ClientPhone            string
	ServiceType            string
	VendorName             string
	TotalAmount            decimal.Decimal
	AdvancePercentage      float64
	AdvanceAmount          decimal.Decimal
	RemainingAmount        decimal.Decimal
	Terms                  string
	ProductionDeadlineDays int
	Status                 order.Status
	ClientConsent          bool
	CompletionPhotos       []string
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AdvancePaymentAt       *time.Time
	ProductionStartedAt    *time.Time
	CompletedAt            *time.Time
	FinalPaymentAt         *time.Time
	DeadlineAt             *time.Time
}
