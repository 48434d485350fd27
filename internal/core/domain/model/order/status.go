package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Finalized
//
// The status is monotone non-decreasing: no transition ever moves an order
// backwards, and Finalized is a final state. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first submitted.
	// Orders in this status are waiting to be picked up by the processor.
	Pending

	// Processing indicates the fulfillment step for the order has started
	// but not yet completed.
	Processing

	// Finalized indicates the order has been fully processed.
	// This is a final state with no further transitions allowed.
	Finalized
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Finalized:  "Finalized",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Finalized:  "Finalized",
	}
}

// StatusFromString parses a status name as used on the API surface.
// Returns an error for names that do not correspond to a valid status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Processing, Finalized.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status permits no further transitions.
func (s Status) IsFinal() bool {
	return s == Finalized
}

// Begin transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (fulfillment started)
//
// Returns (0, error) if the transition is not allowed from the current
// status. Used by Order.BeginProcessing() to enforce state transitions.
func (s Status) Begin() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to begin processing", s.String()),
		)
	}

	return Processing, nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Processing -> Finalized (fulfillment completed)
//
// Invalid transitions:
//   - Pending -> Finalized (fulfillment must begin first)
//   - Finalized -> Finalized (already final)
//
// Returns (0, error) if the transition is not allowed from the current
// status. Finalized is a final state with no further transitions possible.
func (s Status) Finalize() (Status, error) {
	if s != Processing {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to finalize", s.String()),
		)
	}

	return Finalized, nil
}
