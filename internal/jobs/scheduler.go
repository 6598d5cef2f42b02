package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CancelFunc stops a scheduled task. Calling it more than once is safe.
// After it returns, no further run of the task starts; a run already in
// flight completes.
type CancelFunc func()

// Scheduler abstracts periodic task scheduling so the progress loop can be
// driven by real timers in production and synchronously in tests.
type Scheduler interface {
	// Every runs task repeatedly with the given interval between runs.
	Every(interval time.Duration, task func()) (CancelFunc, error)
}

var _ Scheduler = &CronScheduler{}

// CronScheduler implements Scheduler on a shared cron instance using
// "@every" schedules.
type CronScheduler struct {
	cron *cron.Cron
}

// NewCronScheduler creates a scheduler and starts its cron runner.
func NewCronScheduler() *CronScheduler {
	c := cron.New()
	c.Start()
	return &CronScheduler{cron: c}
}

// Every registers task on an "@every" schedule.
func (s *CronScheduler) Every(interval time.Duration, task func()) (CancelFunc, error) {
	entryID, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), task)
	if err != nil {
		return nil, err
	}

	return func() {
		s.cron.Remove(entryID)
	}, nil
}

// Stop stops the cron runner. Scheduled tasks already running complete.
func (s *CronScheduler) Stop() {
	s.cron.Stop()
}
