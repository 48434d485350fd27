package outbox

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

// MaxAttempts is the number of delivery attempts after which a record is
// marked Failed and no longer picked up by the relay.
const MaxAttempts = 10

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is an outbox entry: a serialized lifecycle event stored in the same
// transaction as the order change it announces. A background relay publishes
// pending records to the message queue, which makes publication atomic with
// the state change without a distributed transaction.
//
// Record follows these invariants:
//   - Must have a valid unique identifier
//   - Payload, correlation id and event type are immutable after creation
//   - Status only moves Pending -> Sent, or Pending -> Failed once the
//     attempt budget is exhausted
type Record struct {
	id            kernel.UUID
	payload       []byte
	correlationID string
	eventType     string
	status        Status
	attempts      int
	lastError     string
	createdAt     time.Time
	sentAt        *time.Time

	isConstructed bool
}

// NewRecord creates a pending outbox record carrying an already serialized
// event payload.
func NewRecord(id kernel.UUID, payload []byte, correlationID, eventType string) (*Record, error) {
	record := &Record{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setPayload(payload),
		record.setCorrelationID(correlationID),
		record.setEventType(eventType),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// RestoreRecord reconstructs an outbox record from persistence.
func RestoreRecord(
	id kernel.UUID,
	payload []byte,
	correlationID, eventType string,
	status Status,
	attempts int,
	lastError string,
	createdAt time.Time,
	sentAt *time.Time,
) (*Record, error) {
	record := &Record{
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}

	if err := errors.Join(
		record.setID(id),
		record.setPayload(payload),
		record.setCorrelationID(correlationID),
		record.setEventType(eventType),
		record.setStatus(status),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Payload returns the serialized event carried by the record.
func (r *Record) Payload() []byte {
	return r.payload
}

// CorrelationID returns the correlation identifier of the carried event.
func (r *Record) CorrelationID() string {
	return r.correlationID
}

// EventType returns the type of the carried event.
func (r *Record) EventType() string {
	return r.eventType
}

// Status returns the current delivery status of the record.
func (r *Record) Status() Status {
	return r.status
}

// Attempts returns the number of failed delivery attempts so far.
func (r *Record) Attempts() int {
	return r.attempts
}

// LastError returns the message of the most recent delivery failure,
// or an empty string if none occurred.
func (r *Record) LastError() string {
	return r.lastError
}

// CreatedAt returns the time the record was written.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// SentAt returns the time the record was successfully published,
// or nil if it has not been published yet.
func (r *Record) SentAt() *time.Time {
	return r.sentAt
}

// MarkSent moves the record to Sent after a successful publish and stamps
// sentAt. Only pending records can be marked sent.
func (r *Record) MarkSent() error {
	if r.status != Pending {
		return errs.NewValueIsInvalidError("status")
	}

	now := time.Now().UTC()
	r.status = Sent
	r.sentAt = &now
	return nil
}

// MarkFailed records a delivery failure. The record stays Pending and will be
// retried until the attempt budget is exhausted, after which it moves to
// Failed and requires operator intervention.
func (r *Record) MarkFailed(cause error) error {
	if r.status != Pending {
		return errs.NewValueIsInvalidError("status")
	}

	r.attempts++
	if cause != nil {
		r.lastError = cause.Error()
	}
	if r.attempts >= MaxAttempts {
		r.status = Failed
	}
	return nil
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setPayload(payload []byte) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	r.payload = payload
	return nil
}

func (r *Record) setCorrelationID(correlationID string) error {
	if correlationID == "" {
		return errs.NewValueIsRequiredError("correlationID")
	}
	r.correlationID = correlationID
	return nil
}

func (r *Record) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	r.eventType = eventType
	return nil
}

func (r *Record) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
