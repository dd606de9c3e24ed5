package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	escrowAuditJob *EscrowAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(escrowAuditJob *EscrowAuditJob) *JobManager {
	return &JobManager{
		escrowAuditJob: escrowAuditJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.escrowAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start escrow audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.escrowAuditJob.Stop()
}
