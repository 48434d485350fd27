package order

import (
	"errors"

	"ordertrack/internal/core/domain/model/kernel"
)

// EventTypeOrderCreated is the lifecycle event emitted when an order is
// submitted. It is currently the only event type on the queue.
const EventTypeOrderCreated = "OrderCreated"

// ErrLifecycleEventIsNotConstructed is returned when a LifecycleEvent was not
// created through NewOrderCreatedEvent or RestoreLifecycleEvent.
var ErrLifecycleEventIsNotConstructed = errors.New(
	"LifecycleEvent must be created via NewOrderCreatedEvent or RestoreLifecycleEvent",
)

// LifecycleEvent announces a requested state change for an order. Events are
// carried on the message queue as JSON and correlate back to their order by
// the order's identifier.
//
// The correlation identifier is always derivable from the order id; it is the
// sole de-duplication key available on the wire.
type LifecycleEvent struct {
	orderID   kernel.UUID
	customer  string
	product   string
	amount    float64
	eventType string

	isConstructed bool
}

// NewOrderCreatedEvent creates the lifecycle event announcing a freshly
// submitted order. The event snapshots the order fields at submission time.
func NewOrderCreatedEvent(o *Order) (LifecycleEvent, error) {
	if err := o.Validate(); err != nil {
		return LifecycleEvent{}, err
	}

	return LifecycleEvent{
		orderID:       o.ID(),
		customer:      o.Customer(),
		product:       o.Product(),
		amount:        o.Amount(),
		eventType:     EventTypeOrderCreated,
		isConstructed: true,
	}, nil
}

// RestoreLifecycleEvent reconstructs an event received from the wire.
// The order id must be valid; the remaining fields are carried as-is since
// the authoritative copy lives in the order store.
func RestoreLifecycleEvent(orderID kernel.UUID, customer, product string, amount float64, eventType string) (LifecycleEvent, error) {
	if err := orderID.Validate(); err != nil {
		return LifecycleEvent{}, err
	}

	return LifecycleEvent{
		orderID:       orderID,
		customer:      customer,
		product:       product,
		amount:        amount,
		eventType:     eventType,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created through a constructor.
func (e LifecycleEvent) Validate() error {
	if !e.isConstructed {
		return ErrLifecycleEventIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order the event refers to.
func (e LifecycleEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Customer returns the customer name snapshotted at submission.
func (e LifecycleEvent) Customer() string {
	return e.customer
}

// Product returns the product name snapshotted at submission.
func (e LifecycleEvent) Product() string {
	return e.product
}

// Amount returns the order amount snapshotted at submission.
func (e LifecycleEvent) Amount() float64 {
	return e.amount
}

// EventType returns the type of the lifecycle event.
func (e LifecycleEvent) EventType() string {
	return e.eventType
}

// CorrelationID returns the de-duplication key for the event on the wire.
// It is always the string form of the order id.
func (e LifecycleEvent) CorrelationID() string {
	return e.orderID.String()
}
