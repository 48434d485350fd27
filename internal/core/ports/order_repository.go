// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the message queue, and the
// supporting services used during fulfillment. Adapters implement these
// interfaces, enabling dependency inversion and testability.
package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
