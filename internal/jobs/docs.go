// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. NotificationExpiryJob - Runs every second and drops notifications older than the feed ttl, oldest first
// 2. DemoDeliveryJob - Completes orders 0, 1 and 2 after 5s, 2.5s and 1.5s, each delay counted from the previous one
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(feed, scenario, demo.CompletionDelays, metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "* * * * * *". The demo job uses a
// DelaySchedule: a custom cron.Schedule that yields one activation per delay
// and then the zero time, which removes the entry.
//
// # Error Handling
//
// - Demo delivery failures are logged and counted; the next step still runs
// - Failed job starts will stop any already running jobs
package jobs
