package ports

import (
	"context"
)

// Message is the unit carried by the queue: an opaque serialized event body
// addressed by a correlation identifier and an event type attribute.
type Message struct {
	// Body is the serialized event payload.
	Body []byte

	// CorrelationID identifies the event across retries and redeliveries.
	// It is the sole de-duplication key available on the wire.
	CorrelationID string

	// EventType names the kind of lifecycle event the body contains.
	EventType string
}

// Delivery is a message leased to a consumer. It stays invisible to other
// consumers until it is acknowledged, dead-lettered, or the lease expires and
// the queue redelivers it.
type Delivery struct {
	Message

	// Receipt is the queue-specific lease token used to settle the
	// delivery. Consumers treat it as opaque.
	Receipt any
}

// MessageQueue defines the durable message transport. Implementations must
// provide at-least-once delivery: a message is only removed once it is
// explicitly acknowledged, and an unacknowledged message is eventually
// redelivered.
type MessageQueue interface {
	// Publish enqueues a message for delivery.
	Publish(ctx context.Context, msg Message) error

	// Receive blocks until a message is available or the context is done.
	// The returned delivery is leased to the caller and must be settled
	// with Ack or DeadLetter; otherwise it is redelivered.
	Receive(ctx context.Context) (*Delivery, error)

	// Ack settles a delivery, removing the message from the queue.
	Ack(ctx context.Context, delivery *Delivery) error

	// DeadLetter permanently removes a delivery from the main queue and
	// routes it to the dead-letter destination with the given reason.
	// Dead-lettered messages are never redelivered.
	DeadLetter(ctx context.Context, delivery *Delivery, reason string) error
}
