package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StatusPushQueue is the retry surface of the order status notifier: the
// queue of pushes that failed to reach the orders service.
type StatusPushQueue interface {
	RetryPending(ctx context.Context) int
	PendingCount() int
}

// StatusPushRetryJob periodically drains the failed status push queue.
// Status pushes never roll back local state, so this job is what
// eventually gets the remote ledger back in sync after an outage.
type StatusPushRetryJob struct {
	queue    StatusPushQueue
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusPushRetryJob creates a retry job over the given queue.
// schedule is a six-field cron expression, for example "*/10 * * * * *"
// for every ten seconds.
func NewStatusPushRetryJob(queue StatusPushQueue, schedule string, logger *slog.Logger) *StatusPushRetryJob {
	return &StatusPushRetryJob{
		queue:    queue,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_push_retry_job"),
	}
}

// Start begins the retry job on its configured schedule.
func (j *StatusPushRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if j.queue.PendingCount() == 0 {
			return
		}

		sent := j.queue.RetryPending(ctx)
		remaining := j.queue.PendingCount()
		j.logger.InfoContext(ctx, "Retried queued status pushes", "sent", sent, "remaining", remaining)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status push retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the retry job.
func (j *StatusPushRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status push retry job stopped")
}
