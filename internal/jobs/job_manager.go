package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	progressManager *ProgressManager
	storeWatchJob   *StoreWatchJob
	logger          *slog.Logger
}

// NewJobManager creates a new job manager over the already-wired jobs.
func NewJobManager(
	progressManager *ProgressManager,
	storeWatchJob *StoreWatchJob,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		progressManager: progressManager,
		storeWatchJob:   storeWatchJob,
		logger:          logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs. Progress loops start on demand, so
// only the store watch job starts here.
func (jm *JobManager) StartAll() error {
	if err := jm.storeWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start store watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, including any auto-progress
// loops still running.
func (jm *JobManager) StopAll() {
	jm.progressManager.StopAll()
	jm.storeWatchJob.Stop()
}
