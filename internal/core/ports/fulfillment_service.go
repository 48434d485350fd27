package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// FulfillmentService performs the work of fulfilling an order: picking,
// packing, or whatever the deployment simulates it with. Fulfill blocks
// until the work completes or the context is cancelled.
type FulfillmentService interface {
	Fulfill(ctx context.Context, aggregate *order.Order) error
}
