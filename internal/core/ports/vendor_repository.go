package ports

import (
	"context"

	"escrow/internal/core/domain/model/vendors"
)

// VendorRepository defines the persistence contract for the singleton
// vendor profile and the session login flag.
type VendorRepository interface {
	// GetProfile retrieves the vendor profile.
	// Yields an errs.ObjectNotFoundError when no profile has been saved yet.
	GetProfile(ctx context.Context) (*vendors.Profile, error)

	// SaveProfile upserts the vendor profile.
	SaveProfile(ctx context.Context, profile *vendors.Profile) error

	// IsLoggedIn reports the session login flag.
	IsLoggedIn(ctx context.Context) (bool, error)

	// SetLoggedIn stores the session login flag.
	SetLoggedIn(ctx context.Context, loggedIn bool) error
}
