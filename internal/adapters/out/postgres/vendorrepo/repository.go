package vendorrepo

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/vendors"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// GetProfile retrieves the vendor profile.
func (r *GormVendorRepository) GetProfile(ctx context.Context) (*vendors.Profile, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("profile", "vendor")
		}
		return nil, err
	}

	return toDomain(dto)
}

// SaveProfile upserts the vendor profile.
func (r *GormVendorRepository) SaveProfile(ctx context.Context, profile *vendors.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// IsLoggedIn reports the session login flag. A missing session row reads
// as logged out.
func (r *GormVendorRepository) IsLoggedIn(ctx context.Context) (bool, error) {
	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	return dto.LoggedIn, nil
}

// SetLoggedIn stores the session login flag.
func (r *GormVendorRepository) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	dto := SessionDTO{ID: singletonID, LoggedIn: loggedIn}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
