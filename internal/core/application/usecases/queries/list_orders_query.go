package queries

import (
	"errors"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

// DefaultPageSize is the page size used when the caller does not provide one.
const DefaultPageSize = 50

// MaxPageSize caps the page size a caller may request.
const MaxPageSize = 200

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves a page of orders, optionally filtered by status,
// sorted by creation time descending so the newest orders come first.
//
// Example:
//
//	query, err := NewListOrdersQuery("Pending", 1, 50)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status   order.Status
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for a page of orders.
// status may be empty to list orders in any status. page counts from 1 and
// defaults to 1 when zero; pageSize defaults to DefaultPageSize when zero.
func NewListOrdersQuery(status string, page, pageSize int) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listQuery.setStatus(status),
		listQuery.setPage(page),
		listQuery.setPageSize(pageSize),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or order.Unknown when no filter applies.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListOrdersQuery) setStatus(status string) error {
	if status == "" {
		q.status = order.Unknown
		return nil
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = parsed
	return nil
}

func (q *ListOrdersQuery) setPage(page int) error {
	if page == 0 {
		q.page = 1
		return nil
	}
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *ListOrdersQuery) setPageSize(pageSize int) error {
	if pageSize == 0 {
		q.pageSize = DefaultPageSize
		return nil
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}

	q.pageSize = pageSize
	return nil
}
