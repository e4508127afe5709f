package http

import (
	"time"

	"escrow/internal/core/application/usecases/queries"
	"escrow/internal/core/domain/model/vendors"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest carries the vendor's payment link form.
type CreateOrderRequest struct {
	ClientName             string  `json:"clientName"`
	ClientPhone            string  `json:"clientPhone"`
	ServiceType            string  `json:"serviceType"`
	TotalAmount            float64 `json:"totalAmount"`
	AdvancePercentage      float64 `json:"advancePercentage"`
	ProductionDeadlineDays int     `json:"productionDeadlineDays"`
}

// CreateOrderResponse returns the new order's identifier, which doubles
// as the shareable payment link token.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// Order is the wire representation of one order.
type Order struct {
	ID                     string     `json:"id"`
	ClientName             string     `json:"clientName"`
	ClientPhone            string     `json:"clientPhone"`
	ServiceType            string     `json:"serviceType"`
	VendorName             string     `json:"vendorName"`
	TotalAmount            string     `json:"totalAmount"`
	AdvancePercentage      float64    `json:"advancePercentage"`
	AdvanceAmount          string     `json:"advanceAmount"`
	RemainingAmount        string     `json:"remainingAmount"`
	Terms                  string     `json:"terms"`
	ProductionDeadlineDays int        `json:"productionDeadlineDays"`
	Status                 string     `json:"status"`
	ClientConsent          bool       `json:"clientConsent"`
	CompletionPhotos       []string   `json:"completionPhotos"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
	AdvancePaymentAt       *time.Time `json:"advancePaymentAt,omitempty"`
	ProductionStartedAt    *time.Time `json:"productionStartedAt,omitempty"`
	CompletedAt            *time.Time `json:"completedAt,omitempty"`
	FinalPaymentAt         *time.Time `json:"finalPaymentAt,omitempty"`
	DeadlineAt             *time.Time `json:"deadlineAt,omitempty"`
}

func toOrderModel(resp queries.OrderResponse) Order {
	return Order{
		ID:                     resp.ID.String(),
		ClientName:             resp.ClientName,
		ClientPhone:            resp.ClientPhone,
		ServiceType:            resp.ServiceType,
		VendorName:             resp.VendorName,
		TotalAmount:            resp.TotalAmount.StringFixed(2),
		AdvancePercentage:      resp.AdvancePercentage,
		AdvanceAmount:          resp.AdvanceAmount.StringFixed(2),
		RemainingAmount:        resp.RemainingAmount.StringFixed(2),
		Terms:                  resp.Terms,
		ProductionDeadlineDays: resp.ProductionDeadlineDays,
		Status:                 resp.Status.String(),
		ClientConsent:          resp.ClientConsent,
		CompletionPhotos:       resp.CompletionPhotos,
		CreatedAt:              resp.CreatedAt,
		UpdatedAt:              resp.UpdatedAt,
		AdvancePaymentAt:       resp.AdvancePaymentAt,
		ProductionStartedAt:    resp.ProductionStartedAt,
		CompletedAt:            resp.CompletedAt,
		FinalPaymentAt:         resp.FinalPaymentAt,
		DeadlineAt:             resp.DeadlineAt,
	}
}

// CompleteOrderRequest carries the completion proof photos.
type CompleteOrderRequest struct {
	Photos []string `json:"photos"`
}

// Earnings is the wire representation of the earnings dashboard.
type Earnings struct {
	TotalEarnings   string `json:"totalEarnings"`
	PendingEarnings string `json:"pendingEarnings"`
	ReservedFunds   string `json:"reservedFunds"`
	ActiveOrders    int    `json:"activeOrders"`
}

// Notification is the wire representation of one notification.
type Notification struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
}

// NotificationFeed lists notifications with the unread badge counter.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
}

// Profile is the wire representation of the vendor profile.
type Profile struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BusinessName     string `json:"businessName"`
	SubscriptionPlan string `json:"subscriptionPlan"`
	LoggedIn         bool   `json:"loggedIn"`
}

// SaveProfileRequest carries the vendor's profile form.
type SaveProfileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName"`
}

// SubscribeRequest carries the chosen subscription plan.
type SubscribeRequest struct {
	Plan string `json:"plan"`
}

// Plan is the wire representation of one subscription tier.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Recommended bool     `json:"recommended"`
	Features    []string `json:"features"`
}

func toPlanModels(details []vendors.PlanDetails) []Plan {
	plans := make([]Plan, len(details))
	for i, d := range details {
		plans[i] = Plan{
			ID:          string(d.ID),
			Name:        d.Name,
			Recommended: d.Recommended,
			Features:    d.Features,
		}
	}
	return plans
}

// LoginRequest carries the placeholder login form.
type LoginRequest struct {
	Username string `json:"username"`
}

// PaymentStatus reports where a simulated payment stands.
type PaymentStatus struct {
	Kind  string `json:"kind"`
	State string `json:"state"`
}
