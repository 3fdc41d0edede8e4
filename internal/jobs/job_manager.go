package jobs

import (
	"fmt"

	"repairshop/internal/pkg/logger"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	documentRetryJob *DocumentRetryJob
}

// NewJobManager wires every scheduled job.
func NewJobManager(documents DocumentRetrier, retrySchedule string, log logger.Logger) *JobManager {
	return &JobManager{
		documentRetryJob: NewDocumentRetryJob(documents, retrySchedule, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.documentRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start document retry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.documentRetryJob.Stop()
}
