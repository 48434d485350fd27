package queries

import (
	"context"
	"database/sql"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError if no order
// has the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer,
			product,
			amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return OrderResponse{}, err
	}

	return resp, nil
}

// scanOrderRow maps one orders row onto an OrderResponse. Shared by the
// single-order and list handlers, which select the same column set.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id        uuid.UUID
		resp      OrderResponse
		status    int
		updatedAt sql.NullTime
	)

	if err := scan(
		&id,
		&resp.Customer,
		&resp.Product,
		&resp.Amount,
		&status,
		&resp.CreatedAt,
		&updatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status).String()
	if updatedAt.Valid {
		t := updatedAt.Time
		resp.UpdatedAt = &t
	}

	return resp, nil
}
