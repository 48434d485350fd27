// Package order implements the order aggregate and its lifecycle.
//
// An order moves through a monotone state machine: Pending when submitted,
// Processing while the fulfillment step runs, Finalized when done. The
// aggregate enforces field invariants (minimum name lengths, positive
// amount, immutable id and amount) and only permits forward status
// transitions.
//
// The package also defines LifecycleEvent, the message announcing a state
// change request for an order on the queue. The event's correlation
// identifier is derived from the order id and serves as the wire-level
// de-duplication key; the persisted order status remains the authoritative
// idempotency mechanism.
package order
