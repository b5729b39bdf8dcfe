package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const demoDeliveryJobName = "demo_delivery"

// DemoCompleter completes the order at a collection position when it is
// assigned and still open. demo.Scenario satisfies it.
type DemoCompleter interface {
	CompleteNth(ctx context.Context, i int) (bool, error)
}

// JobObserver records job outcomes. metrics.Metrics satisfies it.
type JobObserver interface {
	ObserveJob(job string, err error)
}

// DemoDeliveryJob completes the first orders of the collection one by one,
// order i after delays[i].
type DemoDeliveryJob struct {
	completer DemoCompleter
	schedule  *DelaySchedule
	cron      *cron.Cron
	observer  JobObserver
	logger    *slog.Logger

	mu   sync.Mutex
	step int
}

// NewDemoDeliveryJob creates the job. observer may be nil.
func NewDemoDeliveryJob(completer DemoCompleter, delays []time.Duration, observer JobObserver, logger *slog.Logger) *DemoDeliveryJob {
	return &DemoDeliveryJob{
		completer: completer,
		schedule:  NewDelaySchedule(delays...),
		cron:      cron.New(),
		observer:  observer,
		logger:    logger.With("component", "demo_delivery_job"),
	}
}

// Start schedules the completions.
func (j *DemoDeliveryJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(j.run))
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Demo delivery job started", "deliveries", len(j.schedule.delays))
	return nil
}

// Stop stops the job and waits for a running completion to finish.
func (j *DemoDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Demo delivery job stopped")
}

func (j *DemoDeliveryJob) run() {
	j.mu.Lock()
	i := j.step
	j.step++
	j.mu.Unlock()

	ctx := context.Background()
	done, err := j.completer.CompleteNth(ctx, i)
	if j.observer != nil {
		j.observer.ObserveJob(demoDeliveryJobName, err)
	}

	switch {
	case err != nil:
		j.logger.ErrorContext(ctx, "Demo delivery failed", "position", i, "error", err)
	case done:
		j.logger.InfoContext(ctx, "Demo delivery completed", "position", i)
	default:
		j.logger.InfoContext(ctx, "Demo delivery skipped, order is not open", "position", i)
	}
}
