package commands

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/metrics"
)

// PublishOutboxCommandHandler publishes pending outbox records to the message
// queue. It is the second half of the transactional outbox: records written
// alongside order changes are picked up here and pushed to the transport.
//
// A publish failure is recorded on the record and retried on the next pass;
// it never fails the pass as a whole, so one unreachable broker partition
// cannot starve the records behind it.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	queue      ports.MessageQueue
	registry   *metrics.Registry
	logger     *slog.Logger
}

// NewPublishOutboxCommandHandler creates a handler for outbox relay passes.
func NewPublishOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	queue ports.MessageQueue,
	registry *metrics.Registry,
	logger *slog.Logger,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		registry:   registry,
		logger:     logger,
	}
}

// Handle performs one relay pass: load up to BatchSize pending records,
// publish each, and persist the per-record outcome. The pending set and the
// outcome updates share one transaction so concurrent relay passes do not
// double-publish committed outcomes.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()
	records, err := outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, record := range records {
		msg := ports.Message{
			Body:          record.Payload(),
			CorrelationID: record.CorrelationID(),
			EventType:     record.EventType(),
		}

		if publishErr := h.queue.Publish(ctx, msg); publishErr != nil {
			wrapped := errs.NewPublishError(record.CorrelationID(), publishErr)
			h.logger.WarnContext(ctx, "outbox publish failed",
				slog.String("correlation_id", record.CorrelationID()),
				slog.Int("attempts", record.Attempts()+1),
				slog.Any("error", wrapped),
			)

			if err = record.MarkFailed(publishErr); err != nil {
				return err
			}
		} else {
			if err = record.MarkSent(); err != nil {
				return err
			}
			h.registry.EventsPublished.Inc()
		}

		if err = outboxRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
