package orderrepo

import (
	"context"
	"errors"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"
	"escrow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, guarded by an optimistic status check.
// The write applies only while the stored status still equals
// expectedStatus; a lost race surfaces as errs.VersionIsInvalidError.
func (r *GormOrderRepository) Update(
	ctx context.Context, aggregate *order.Order, expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError(
			"order status",
			errors.New("order was modified or removed concurrently"),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
