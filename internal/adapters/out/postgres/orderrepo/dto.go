// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Amounts use numeric(12,2); the status column is indexed for
// the dashboard filter and the reminder scan.
type OrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientName             string
	ClientPhone            string
	ServiceType            string
	VendorName             string
	TotalAmount            decimal.Decimal `gorm:"type:numeric(12,2)"`
	AdvancePercentage      float64
	AdvanceAmount          decimal.Decimal `gorm:"type:numeric(12,2)"`
	RemainingAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Terms                  string          `gorm:"type:text"`
	ProductionDeadlineDays int
	Status                 int `gorm:"index"`
	ClientConsent          bool
	CompletionPhotos       pq.StringArray `gorm:"type:text[]"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	AdvancePaymentAt       *time.Time
	ProductionStartedAt    *time.Time
	CompletedAt            *time.Time
	FinalPaymentAt         *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		ClientName:             aggregate.ClientName(),
		ClientPhone:            aggregate.ClientPhone(),
		ServiceType:            aggregate.ServiceType(),
		VendorName:             aggregate.VendorName(),
		TotalAmount:            aggregate.TotalAmount().Decimal(),
		AdvancePercentage:      aggregate.AdvancePercentage(),
		AdvanceAmount:          aggregate.AdvanceAmount().Decimal(),
		RemainingAmount:        aggregate.RemainingAmount().Decimal(),
		Terms:                  aggregate.Terms(),
		ProductionDeadlineDays: aggregate.ProductionDeadlineDays(),
		Status:                 int(aggregate.Status()),
		ClientConsent:          aggregate.ClientConsent(),
		CompletionPhotos:       pq.StringArray(aggregate.CompletionPhotos()),
		CreatedAt:              aggregate.CreatedAt(),
		UpdatedAt:              aggregate.UpdatedAt(),
		AdvancePaymentAt:       aggregate.AdvancePaymentAt(),
		ProductionStartedAt:    aggregate.ProductionStartedAt(),
		CompletedAt:            aggregate.CompletedAt(),
		FinalPaymentAt:         aggregate.FinalPaymentAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                     id,
		ClientName:             dto.ClientName,
		ClientPhone:            dto.ClientPhone,
		ServiceType:            dto.ServiceType,
		VendorName:             dto.VendorName,
		TotalAmount:            kernel.MoneyFromDecimal(dto.TotalAmount),
		AdvancePercentage:      dto.AdvancePercentage,
		AdvanceAmount:          kernel.MoneyFromDecimal(dto.AdvanceAmount),
		RemainingAmount:        kernel.MoneyFromDecimal(dto.RemainingAmount),
		Terms:                  dto.Terms,
		ProductionDeadlineDays: dto.ProductionDeadlineDays,
		Status:                 order.Status(dto.Status),
		ClientConsent:          dto.ClientConsent,
		CreatedAt:              dto.CreatedAt,
		UpdatedAt:              dto.UpdatedAt,
		AdvancePaymentAt:       dto.AdvancePaymentAt,
		ProductionStartedAt:    dto.ProductionStartedAt,
		CompletedAt:            dto.CompletedAt,
		FinalPaymentAt:         dto.FinalPaymentAt,
		CompletionPhotos:       dto.CompletionPhotos,
	})
}
