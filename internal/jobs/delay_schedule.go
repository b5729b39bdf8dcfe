package jobs

import (
	"sync"
	"time"
)

// DelaySchedule is a cron.Schedule that fires once per delay, each delay
// counted from the previous activation, and then never again.
type DelaySchedule struct {
	mu     sync.Mutex
	delays []time.Duration
	next   int
}

func NewDelaySchedule(delays ...time.Duration) *DelaySchedule {
	return &DelaySchedule{delays: append([]time.Duration(nil), delays...)}
}

// Next returns the zero time once the delays are exhausted, which tells
// cron to drop the entry.
func (s *DelaySchedule) Next(t time.Time) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.delays) {
		return time.Time{}
	}
	d := s.delays[s.next]
	s.next++
	return t.Add(d)
}
