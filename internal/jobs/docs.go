// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish pending outbox records to the message queue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(publishOutboxHandler, batchSize, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *", running every second so
// committed orders have their OrderCreated event on the queue within about a
// second. Records a pass fails to publish stay pending and are retried on the
// next pass; overlapping passes are safe because pending records are locked
// while a pass holds them.
package jobs
