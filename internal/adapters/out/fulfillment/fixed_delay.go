// Package fulfillment provides the fulfillment service implementation.
// The real work of picking and packing an order is simulated by a fixed
// delay, long enough to make the Processing window observable.
package fulfillment

import (
	"context"
	"time"

	"ordertrack/internal/core/domain/model/order"
)

// DefaultDelay is the simulated fulfillment duration used when none is given.
const DefaultDelay = 5 * time.Second

// FixedDelayService implements ports.FulfillmentService by sleeping for a
// fixed duration. Cancelling the context aborts the wait, leaving the order
// in Processing for a later delivery to resume.
type FixedDelayService struct {
	delay time.Duration
}

// NewFixedDelayService creates a service with the given simulated duration.
// A non-positive delay falls back to DefaultDelay.
func NewFixedDelayService(delay time.Duration) *FixedDelayService {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &FixedDelayService{delay: delay}
}

// Fulfill blocks for the configured delay or until the context is done.
func (s *FixedDelayService) Fulfill(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
