package ports

import (
	"context"
	"time"
)

// DeadLetter is the durable record of a message that could not be processed
// and was removed from the main queue.
type DeadLetter struct {
	// Body is the raw message payload as received.
	Body []byte

	// CorrelationID is the correlation identifier of the failed message,
	// or an empty string if it could not be determined.
	CorrelationID string

	// EventType is the event type attribute of the failed message, if any.
	EventType string

	// Reason describes why the message was dead-lettered.
	Reason string

	// OccurredAt is the time the message was dead-lettered.
	OccurredAt time.Time
}

// DeadLetterSink stores dead-lettered messages for later inspection.
// The sink is append-only: entries are never consumed back into the
// processing pipeline.
type DeadLetterSink interface {
	// Add appends a dead letter to the sink.
	Add(ctx context.Context, letter DeadLetter) error

	// GetAll retrieves all stored dead letters, newest first.
	GetAll(ctx context.Context) ([]DeadLetter, error)
}
