// Package jobs provides scheduled background tasks for the platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusPushRetryJob - Periodically resends order status notifications
// that failed to reach the orders service
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(notifier, retrySchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty retry queue is the normal case and produces no log output.
// Pushes that fail again stay queued for the next run.
package jobs
