package queries

import (
	"context"
	"database/sql"
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorProfileQueryHandler retrieves the vendor profile row and the
// session flag.
type GetVendorProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorProfileQueryHandler creates a handler for profile queries.
func NewGetVendorProfileQueryHandler(db *gorm.DB) GetVendorProfileQueryHandler {
	return GetVendorProfileQueryHandler{db: db}
}

// Handle executes the profile query. A missing profile yields an
// errs.ObjectNotFoundError; a missing session row reads as logged out.
func (h GetVendorProfileQueryHandler) Handle(
	ctx context.Context,
	query GetVendorProfileQuery,
) (GetVendorProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVendorProfileQueryResponse{}, err
	}

	var (
		resp GetVendorProfileQueryResponse
		plan string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			email,
			phone,
			business_name,
			subscription_plan
		FROM vendor_profiles
		WHERE id = 1
	`).Row()

	err := row.Scan(&resp.Name, &resp.Email, &resp.Phone, &resp.BusinessName, &plan)
	if errors.Is(err, sql.ErrNoRows) {
		return GetVendorProfileQueryResponse{}, errs.NewObjectNotFoundError("profile", "vendor")
	}
	if err != nil {
		return GetVendorProfileQueryResponse{}, err
	}
	resp.SubscriptionPlan = vendors.SubscriptionPlan(plan)

	sessionRow := h.db.WithContext(ctx).Raw(`
		SELECT logged_in FROM vendor_sessions WHERE id = 1
	`).Row()

	err = sessionRow.Scan(&resp.LoggedIn)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GetVendorProfileQueryResponse{}, err
	}

	return resp, nil
}
