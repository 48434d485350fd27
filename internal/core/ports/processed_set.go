package ports

import (
	"context"
)

// ProcessedSet tracks correlation identifiers of already processed messages.
// It is a fast-path guard against redeliveries; the authoritative duplicate
// check is the order status in the store, so the set may forget entries
// without breaking correctness.
type ProcessedSet interface {
	// Contains reports whether the correlation id was already processed.
	Contains(ctx context.Context, correlationID string) (bool, error)

	// Add marks the correlation id as processed.
	Add(ctx context.Context, correlationID string) error
}
