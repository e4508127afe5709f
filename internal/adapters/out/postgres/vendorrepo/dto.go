// Package vendorrepo persists the singleton vendor profile and session flag.
package vendorrepo

import (
	"escrow/internal/core/domain/model/vendors"
)

// singletonID keys the one profile row and the one session row.
const singletonID = 1

// ProfileDTO represents the database structure for the vendor profile.
type ProfileDTO struct {
	ID               int `gorm:"primaryKey"`
	Name             string
	Email            string
	Phone            string
	BusinessName     string
	SubscriptionPlan string
}

// TableName specifies the database table name for the vendor profile.
func (ProfileDTO) TableName() string {
	return "vendor_profiles"
}

// SessionDTO represents the single-row login flag.
type SessionDTO struct {
	ID       int `gorm:"primaryKey"`
	LoggedIn bool
}

// TableName specifies the database table name for the session flag.
func (SessionDTO) TableName() string {
	return "vendor_sessions"
}

func fromDomain(profile *vendors.Profile) ProfileDTO {
	return ProfileDTO{
		ID:               singletonID,
		Name:             profile.Name(),
		Email:            profile.Email(),
		Phone:            profile.Phone(),
		BusinessName:     profile.BusinessName(),
		SubscriptionPlan: string(profile.SubscriptionPlan()),
	}
}

func toDomain(dto ProfileDTO) (*vendors.Profile, error) {
	return vendors.NewProfile(
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.BusinessName,
		vendors.SubscriptionPlan(dto.SubscriptionPlan),
	)
}
