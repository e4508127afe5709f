package queries

import (
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/guard"
)

var ErrGetVendorProfileQueryIsNotConstructed = errors.New(
	"GetVendorProfileQuery must be created via NewGetVendorProfileQuery constructor",
)

// GetVendorProfileQuery retrieves the vendor's profile and session state.
type GetVendorProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetVendorProfileQuery creates a profile query.
func NewGetVendorProfileQuery() GetVendorProfileQuery {
	return GetVendorProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetVendorProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorProfileQueryIsNotConstructed)
}

// GetVendorProfileQueryResponse is the read model of the vendor profile.
type GetVendorProfileQueryResponse struct {
	Name             string
	Email            string
	Phone            string
	BusinessName     string
	SubscriptionPlan vendors.SubscriptionPlan
	LoggedIn         bool
}
