// Package latency simulates network round-trip delay in front of use cases.
package latency

import (
	"context"
	"time"
)

// Simulator pauses callers for a fixed duration. The zero value does not
// wait, which is what seeding and tests use.
type Simulator struct {
	delay time.Duration
}

func New(delay time.Duration) Simulator {
	if delay < 0 {
		delay = 0
	}
	return Simulator{delay: delay}
}

// None returns a simulator that never waits.
func None() Simulator {
	return Simulator{}
}

// Delay returns the configured pause.
func (s Simulator) Delay() time.Duration {
	return s.delay
}

// Wait blocks for the configured delay or until ctx is done. It returns
// ctx.Err() when the context ends first.
func (s Simulator) Wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
