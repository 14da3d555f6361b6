package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusPushRetryJob *StatusPushRetryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(queue StatusPushQueue, retrySchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		statusPushRetryJob: NewStatusPushRetryJob(queue, retrySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusPushRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start status push retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusPushRetryJob.Stop()
}
