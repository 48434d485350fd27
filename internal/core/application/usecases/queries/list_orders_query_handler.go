package queries

import (
	"context"

	"ordertrack/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of orders from the database.
// Results are sorted by creation time descending with the order id as a
// tiebreak, so paging stays stable when orders share a timestamp.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	query, _ := NewListOrdersQuery("Finalized", 1, 50)
//
//	finalized, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
//	fmt.Printf("%d finalized orders on page 1\n", len(finalized))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query and returns one page of orders.
// An empty page is returned as an empty slice, not nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	offset := (query.Page() - 1) * query.PageSize()

	sqlQuery := `
		SELECT
			id,
			customer,
			product,
			amount,
			status,
			created_at,
			updated_at
		FROM orders
	`
	args := make([]any, 0, 3)
	if query.Status() != order.Unknown {
		sqlQuery += ` WHERE status = ?`
		args = append(args, int(query.Status()))
	}
	sqlQuery += ` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`
	args = append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
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
