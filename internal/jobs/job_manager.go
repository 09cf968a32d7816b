package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tagReconciliationJob *TagReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(tagReconciliationJob *TagReconciliationJob) *JobManager {
	return &JobManager{
		tagReconciliationJob: tagReconciliationJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tagReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start tag reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tagReconciliationJob.Stop()
}
