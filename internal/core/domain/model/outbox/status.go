package outbox

import (
	"ordertrack/internal/pkg/errs"
)

// Status represents the delivery state of an outbox record.
type Status int

const (
	// Unknown represents an invalid or uninitialized status.
	Unknown Status = iota

	// Pending means the record has been written but not yet published.
	Pending

	// Sent means the record was successfully published to the queue.
	Sent

	// Failed means the attempt budget was exhausted without a successful
	// publish. Failed records are skipped by the relay.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Pending: "pending",
		Sent:    "sent",
		Failed:  "failed",
	}
}

// Validate checks that the status is one of the defined delivery states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsRequiredError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase string representation of the status.
// Returns "unknown" for invalid statuses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}
