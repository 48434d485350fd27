package commands

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var (
	ErrPublishOutboxCommandIsNotConstructed = errors.New(
		"PublishOutboxCommand must be created via NewPublishOutboxCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// PublishOutboxCommand represents one relay pass over the outbox: publish up
// to batchSize pending records to the message queue.
type PublishOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewPublishOutboxCommand creates a command for one relay pass.
func NewPublishOutboxCommand(batchSize int) (PublishOutboxCommand, error) {
	publishCommand := PublishOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := publishCommand.setBatchSize(batchSize); err != nil {
		return PublishOutboxCommand{}, err
	}

	return publishCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishOutboxCommandIsNotConstructed if validation fails.
func (c PublishOutboxCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of records to publish in one pass.
func (c PublishOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *PublishOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}

	c.batchSize = batchSize
	return nil
}
