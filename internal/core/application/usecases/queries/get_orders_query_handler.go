package queries

import (
	"context"
	"database/sql"
	"time"

	"escrow/internal/core/domain/model/kernel"
	"escrow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	client_name,
	client_phone,
	service_type,
	vendor_name,
	total_amount,
	advance_percentage,
	advance_amount,
	remaining_amount,
	terms,
	production_deadline_days,
	status,
	client_consent,
	completion_photos,
	created_at,
	updated_at,
	advance_payment_at,
	production_started_at,
	completed_at,
	final_payment_at
`

// GetOrdersQueryHandler retrieves the vendor's order list from the
// database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order list query with the requested search, filter,
// and sort.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := make([]any, 0, 2)

	if search := query.Search(); search != "" {
		stmt += ` AND (client_name ILIKE ? OR client_phone ILIKE ? OR service_type ILIKE ? OR id::text ILIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}

	if status := query.Status(); status != nil {
		stmt += ` AND status = ?`
		args = append(args, *status)
	}

	switch query.Sort() {
	case SortOldest:
		stmt += ` ORDER BY created_at ASC`
	case SortDeadline:
		stmt += ` ORDER BY production_started_at IS NULL,
			production_started_at + make_interval(days => production_deadline_days) ASC`
	case SortNewest:
		stmt += ` ORDER BY created_at DESC`
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp        OrderResponse
		id          uuid.UUID
		status      int
		photos      pq.StringArray
		total       decimal.Decimal
		advance     decimal.Decimal
		remaining   decimal.Decimal
		advanceAt   sql.NullTime
		startedAt   sql.NullTime
		completedAt sql.NullTime
		finalAt     sql.NullTime
	)

	err := rows.Scan(
		&id,
		&resp.ClientName,
		&resp.ClientPhone,
		&resp.ServiceType,
		&resp.VendorName,
		&total,
		&resp.AdvancePercentage,
		&advance,
		&remaining,
		&resp.Terms,
		&resp.ProductionDeadlineDays,
		&status,
		&resp.ClientConsent,
		&photos,
		&resp.CreatedAt,
		&resp.UpdatedAt,
		&advanceAt,
		&startedAt,
		&completedAt,
		&finalAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.Status = order.Status(status)
	resp.TotalAmount = total
	resp.AdvanceAmount = advance
	resp.RemainingAmount = remaining
	resp.CompletionPhotos = photos
	resp.AdvancePaymentAt = nullableTime(advanceAt)
	resp.ProductionStartedAt = nullableTime(startedAt)
	resp.CompletedAt = nullableTime(completedAt)
	resp.FinalPaymentAt = nullableTime(finalAt)

	if resp.ProductionStartedAt != nil {
		deadline := resp.ProductionStartedAt.Add(
			time.Duration(resp.ProductionDeadlineDays) * 24 * time.Hour,
		)
		resp.DeadlineAt = &deadline
	}

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
