package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var (
	ErrFulfillOrderCommandIsNotConstructed = errors.New(
		"FulfillOrderCommand must be created via NewFulfillOrderCommand constructor",
	)
	ErrBodyIsRequired = errors.New("body is required")
)

// FulfillOrderCommand represents a queue delivery to process: the raw message
// body plus the correlation identifier the transport carried for it. The body
// is decoded inside the handler so that deserialization failures surface as
// dead-letter dispositions rather than transport errors.
type FulfillOrderCommand struct { //nolint:recvcheck //using for validation
	body          []byte
	correlationID string

	guard guard.ConstructorGuard
}

// NewFulfillOrderCommand creates a command to process one queue delivery.
// The correlation id may be empty when the transport did not carry one;
// the handler falls back to the order id found in the body.
func NewFulfillOrderCommand(body []byte, correlationID string) (FulfillOrderCommand, error) {
	fulfillCommand := FulfillOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := fulfillCommand.setBody(body); err != nil {
		return FulfillOrderCommand{}, err
	}
	fulfillCommand.correlationID = correlationID

	return fulfillCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFulfillOrderCommandIsNotConstructed if validation fails.
func (c FulfillOrderCommand) Validate() error {
	return c.guard.Validate(ErrFulfillOrderCommandIsNotConstructed)
}

// Body returns the raw message body as received from the queue.
func (c FulfillOrderCommand) Body() []byte {
	return c.body
}

// CorrelationID returns the correlation identifier carried by the transport,
// or an empty string if none was present.
func (c FulfillOrderCommand) CorrelationID() string {
	return c.correlationID
}

func (c *FulfillOrderCommand) setBody(body []byte) error {
	if len(body) == 0 {
		return ErrBodyIsRequired
	}

	c.body = body
	return nil
}
