package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationExpiryJob *NotificationExpiryJob
	demoDeliveryJob       *DemoDeliveryJob
}

// NewJobManager creates a job manager. A nil completer disables the demo
// delivery job.
func NewJobManager(
	expirer Expirer,
	completer DemoCompleter,
	demoDelays []time.Duration,
	observer JobObserver,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		notificationExpiryJob: NewNotificationExpiryJob(expirer, observer, logger),
	}
	if completer != nil {
		jm.demoDeliveryJob = NewDemoDeliveryJob(completer, demoDelays, observer, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification expiry job: %w", err)
	}

	if jm.demoDeliveryJob != nil {
		if err := jm.demoDeliveryJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.notificationExpiryJob.Stop()
			return fmt.Errorf("failed to start demo delivery job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.demoDeliveryJob != nil {
		jm.demoDeliveryJob.Stop()
	}
	jm.notificationExpiryJob.Stop()
}
