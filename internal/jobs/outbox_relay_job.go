package jobs

import (
	"context"
	"log/slog"

	"ordertrack/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelayBatchSize caps how many pending outbox records one relay pass
// drains. A single slow broker call then delays at most one batch.
const DefaultRelayBatchSize = 100

// OutboxRelayJob periodically drains pending outbox records to the message
// queue. Runs every second so a stored order's event reaches the queue within
// about a second of commit.
type OutboxRelayJob struct {
	handler   commands.PublishOutboxCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job for relaying outbox records.
// Uses PublishOutboxCommandHandler to publish pending records every second.
func NewOutboxRelayJob(handler commands.PublishOutboxCommandHandler, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if batchSize <= 0 {
		batchSize = DefaultRelayBatchSize
	}
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, err := commands.NewPublishOutboxCommand(j.batchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build outbox relay command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
