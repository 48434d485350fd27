package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for outbox records.
// Records are added in the same transaction as the order change they
// announce and later published by the relay.
type OutboxRepository interface {
	// Add persists a new outbox record.
	Add(ctx context.Context, record *outbox.Record) error

	// Update persists changes to an existing record, typically after the
	// relay marked it sent or recorded a failed attempt.
	Update(ctx context.Context, record *outbox.Record) error

	// GetPending retrieves up to limit pending records in creation order.
	// Sent and failed records are never returned.
	GetPending(ctx context.Context, limit int) ([]*outbox.Record, error)
}
