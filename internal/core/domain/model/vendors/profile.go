// Package vendors contains the vendor profile and the static subscription
// plan catalog.
package vendors

import (
	"fmt"
	"strings"

	"escrow/internal/pkg/errs"
	"escrow/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile was not created
// through NewProfile or DefaultProfile.
var ErrProfileIsNotConstructed = errs.NewValueIsRequiredError("Profile must be created via NewProfile or DefaultProfile")

// SubscriptionPlan identifies one of the three fixed subscription tiers.
// The zero value means "no subscription".
type SubscriptionPlan string

const (
	// PlanNone means the vendor has not subscribed to any package.
	PlanNone SubscriptionPlan = ""

	// PlanPackageA is the entry tier.
	PlanPackageA SubscriptionPlan = "package_a"

	// PlanPackageB is the recommended middle tier.
	PlanPackageB SubscriptionPlan = "package_b"

	// PlanPackageC is the high-limit tier.
	PlanPackageC SubscriptionPlan = "package_c"
)

// Validate checks that the plan is one of the fixed tiers or absent.
func (p SubscriptionPlan) Validate() error {
	switch p {
	case PlanNone, PlanPackageA, PlanPackageB, PlanPackageC:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"subscription plan is invalid",
			fmt.Errorf("%q is not a valid plan", string(p)),
		)
	}
}

// IsSubscribed reports whether the plan is one of the paid tiers.
func (p SubscriptionPlan) IsSubscribed() bool {
	return p != PlanNone
}

// PlanDetails describes one subscription tier of the static catalog.
// The catalog is pure data with no behavior.
type PlanDetails struct {
	ID          SubscriptionPlan
	Name        string
	Recommended bool
	Features    []string
}

// Plans returns the static subscription plan catalog.
func Plans() []PlanDetails {
	return []PlanDetails{
		{
			ID:   PlanPackageA,
			Name: "Package A",
			Features: []string{
				"1% per e-Pay transaction",
				"Access to payment insights",
				"Access to different payment methods",
				"15,000 KWD daily limit",
				"30,000 KWD monthly limit",
			},
		},
		{
			ID:          PlanPackageB,
			Name:        "Package B",
			Recommended: true,
			Features: []string{
				"250 fils per e-Pay transaction",
				"1% per 3arboon transaction",
				"25,000 KWD daily limit",
				"50,000 KWD monthly limit",
				"Access to payment insights",
				"Access to different payment methods",
			},
		},
		{
			ID:   PlanPackageC,
			Name: "Package C",
			Features: []string{
				"350 fils per e-Pay transaction",
				"1% per 3arboon transaction",
				"40,000 KWD daily limit",
				"100,000 KWD monthly limit",
				"Access to payment insights",
				"Access to different payment methods",
			},
		},
	}
}

// Profile is the vendor's singleton profile for the session: contact
// details, business name, and the optional subscription plan.
type Profile struct {
	name         string
	email        string
	phone        string
	businessName string
	plan         SubscriptionPlan

	guard guard.ConstructorGuard
}

// NewProfile creates a profile with the given details. The name is
// required; email, phone, and business name may be empty.
func NewProfile(name, email, phone, businessName string, plan SubscriptionPlan) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("vendor name")
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return &Profile{
		name:         name,
		email:        strings.TrimSpace(email),
		phone:        strings.TrimSpace(phone),
		businessName: strings.TrimSpace(businessName),
		plan:         plan,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// DefaultProfile creates the profile initialized on first login:
// a placeholder email derived from the username and a stock business name.
func DefaultProfile(username string) (*Profile, error) {
	return NewProfile(
		username,
		fmt.Sprintf("%s@example.com", strings.TrimSpace(username)),
		"",
		"My Business",
		PlanNone,
	)
}

// Validate ensures the profile was properly constructed.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// Name returns the vendor's personal name.
func (p *Profile) Name() string {
	return p.name
}

// Email returns the vendor's email address.
func (p *Profile) Email() string {
	return p.email
}

// Phone returns the vendor's phone number.
func (p *Profile) Phone() string {
	return p.phone
}

// BusinessName returns the vendor's business name, possibly empty.
func (p *Profile) BusinessName() string {
	return p.businessName
}

// SubscriptionPlan returns the current plan, PlanNone when unsubscribed.
func (p *Profile) SubscriptionPlan() SubscriptionPlan {
	return p.plan
}

// DisplayName returns the name used on generated terms: the business name
// when set, otherwise the personal name.
func (p *Profile) DisplayName() string {
	if p.businessName != "" {
		return p.businessName
	}
	return p.name
}

// Subscribe switches the profile to the given paid plan. Re-subscribing to
// a different tier updates the existing subscription.
func (p *Profile) Subscribe(plan SubscriptionPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if !plan.IsSubscribed() {
		return errs.NewValueIsRequiredError("subscription plan")
	}

	p.plan = plan
	return nil
}
