package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const notificationExpiryJobName = "notification_expiry"

// Expirer drops notices that outlived their ttl. notifications.Feed
// satisfies it.
type Expirer interface {
	Expire(now time.Time) int
}

// NotificationExpiryJob clears expired notifications every second.
type NotificationExpiryJob struct {
	expirer  Expirer
	cron     *cron.Cron
	observer JobObserver
	logger   *slog.Logger
	now      func() time.Time
}

// NewNotificationExpiryJob creates the job. observer may be nil.
func NewNotificationExpiryJob(expirer Expirer, observer JobObserver, logger *slog.Logger) *NotificationExpiryJob {
	return &NotificationExpiryJob{
		expirer:  expirer,
		cron:     cron.New(cron.WithSeconds()),
		observer: observer,
		logger:   logger.With("component", "notification_expiry_job"),
		now:      time.Now,
	}
}

// Start begins the job to run every second.
func (j *NotificationExpiryJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", func() { j.Tick(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification expiry job started (running every second)")
	return nil
}

// Stop stops the job.
func (j *NotificationExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification expiry job stopped")
}

// Tick runs one expiry pass and returns the number of notices removed.
func (j *NotificationExpiryJob) Tick(ctx context.Context) int {
	removed := j.expirer.Expire(j.now())
	if j.observer != nil {
		j.observer.ObserveJob(notificationExpiryJobName, nil)
	}
	if removed > 0 {
		j.logger.DebugContext(ctx, "Notifications expired", "count", removed)
	}
	return removed
}
