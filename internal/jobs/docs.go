// Package jobs provides scheduled background tasks for the order tracking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations of the service.
//
// # Available Jobs
//
// 1. ProgressManager - Runs a cancellable per-order loop that advances an
// order one fulfillment stage per tick until it is delivered or the loop is
// cancelled.
//
// 2. StoreWatchJob - Polls the persisted order collection every second and
// invokes a registered callback when it changed between polls, letting
// collaborators re-fetch their view.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(progressManager, storeWatchJob, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs schedule through the Scheduler port. The production
// CronScheduler drives them with cron "@every" schedules: a configurable
// interval for the progress loop (3s by default) and one second for the
// store watch poll.
//
// # Error Handling
//
//   - A failed advance terminates that order's progress loop and emits an
//     error notification; the loop never retries unboundedly.
//   - Store watch poll failures are logged and the poll retries on the next
//     tick.
package jobs
