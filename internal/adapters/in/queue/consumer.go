// Package queue contains the inbound adapter that pulls OrderCreated
// deliveries off the message queue and drives them through the fulfillment
// use case.
package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/metrics"
)

// commandHandler defines the interface for processing a queue delivery.
type commandHandler interface {
	Handle(ctx context.Context, cmd commands.FulfillOrderCommand) error
}

// Consumer receives deliveries from the message queue one at a time and
// settles each according to the processing outcome:
//
//   - success: acknowledge
//   - duplicate: acknowledge without reprocessing
//   - permanent failure (malformed payload, unknown order): dead-letter
//   - transient failure: leave unacknowledged so the queue redelivers
//
// A single delivery is in flight at any time, so a slow fulfillment never
// interleaves with the next message.
type Consumer struct {
	queue   ports.MessageQueue
	sink    ports.DeadLetterSink
	handler commandHandler
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewConsumer creates a consumer for the given queue and handler.
func NewConsumer(
	queue ports.MessageQueue,
	sink ports.DeadLetterSink,
	handler commandHandler,
	registry *metrics.Registry,
	logger *slog.Logger,
) *Consumer {
	return &Consumer{
		queue:   queue,
		sink:    sink,
		handler: handler,
		metrics: registry,
		logger:  logger.With("component", "queue_consumer"),
	}
}

// Run receives and processes deliveries until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.InfoContext(ctx, "Queue consumer started")

	for {
		delivery, err := c.queue.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.InfoContext(ctx, "Queue consumer stopped")
				return nil
			}
			c.logger.ErrorContext(ctx, "Failed to receive from queue", "error", err)
			continue
		}

		c.process(ctx, delivery)
	}
}

// process handles a single delivery and settles it with the queue.
func (c *Consumer) process(ctx context.Context, delivery *ports.Delivery) {
	logger := c.logger.With("correlation_id", delivery.CorrelationID)

	cmd, err := commands.NewFulfillOrderCommand(delivery.Body, delivery.CorrelationID)
	if err != nil {
		c.deadLetter(ctx, delivery, err)
		return
	}

	start := time.Now()
	err = c.handler.Handle(ctx, cmd)

	switch {
	case err == nil:
		c.metrics.OrdersProcessed.Inc()
		c.metrics.FulfillmentDuration.Observe(time.Since(start).Seconds())
		c.ack(ctx, delivery)
		logger.InfoContext(ctx, "Order processed", "duration", time.Since(start))

	case errors.Is(err, commands.ErrOrderAlreadyProcessed):
		c.metrics.DuplicatesSkipped.Inc()
		c.ack(ctx, delivery)
		logger.InfoContext(ctx, "Duplicate delivery skipped")

	case errors.Is(err, errs.ErrDeserialization), errors.Is(err, errs.ErrObjectNotFound):
		c.deadLetter(ctx, delivery, err)

	default:
		// Transient failure: leave the delivery unsettled so the queue
		// redelivers it after the visibility timeout.
		logger.WarnContext(ctx, "Processing failed, leaving delivery for redelivery", "error", err)
	}
}

func (c *Consumer) ack(ctx context.Context, delivery *ports.Delivery) {
	if err := c.queue.Ack(ctx, delivery); err != nil {
		c.logger.ErrorContext(ctx, "Failed to acknowledge delivery",
			"correlation_id", delivery.CorrelationID, "error", err)
	}
}

// deadLetter records the failed delivery in the sink before removing it from
// the queue. If the sink write fails the delivery is left unsettled: losing
// the record would hide the failure, redelivery merely retries the write.
func (c *Consumer) deadLetter(ctx context.Context, delivery *ports.Delivery, cause error) {
	letter := ports.DeadLetter{
		Body:          delivery.Body,
		CorrelationID: delivery.CorrelationID,
		EventType:     delivery.EventType,
		Reason:        cause.Error(),
		OccurredAt:    time.Now().UTC(),
	}

	if err := c.sink.Add(ctx, letter); err != nil {
		c.logger.ErrorContext(ctx, "Failed to record dead letter, leaving delivery for redelivery",
			"correlation_id", delivery.CorrelationID, "error", err)
		return
	}

	if err := c.queue.DeadLetter(ctx, delivery, cause.Error()); err != nil {
		c.logger.ErrorContext(ctx, "Failed to dead-letter delivery",
			"correlation_id", delivery.CorrelationID, "error", err)
		return
	}

	c.metrics.MessagesDeadLetter.Inc()
	c.logger.WarnContext(ctx, "Delivery dead-lettered",
		"correlation_id", delivery.CorrelationID, "reason", cause.Error())
}
