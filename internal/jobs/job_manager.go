// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the order backlog
// reporter; JobManager exists so main has a single start/stop surface as
// more jobs arrive.
package jobs

import (
	"fmt"
	"log/slog"

	"fastdelivery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBacklogJob *OrderBacklogJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	backlogHandler queries.GetOrderBacklogQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderBacklogJob: NewOrderBacklogJob(backlogHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start order backlog job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBacklogJob.Stop()
}
