// Package notifications keeps the short-lived feed of delivery notices shown
// to dispatchers. Notices are appended as delivery events arrive and expire
// oldest first once they are older than the feed's time to live.
package notifications

import (
	"slices"
	"sync"
	"time"

	"logistics/internal/core/domain/events"
)

// DefaultTTL is how long a notice stays in the feed.
const DefaultTTL = 10 * time.Second

// Notification is one entry of the feed.
type Notification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	OrderID      string    `json:"orderId"`
	VehiclePlate string    `json:"vehiclePlate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Observer is notified of the feed size after every change.
type Observer interface {
	SetNotifications(n int)
}

// Feed is safe for concurrent use.
type Feed struct {
	mu       sync.Mutex
	items    []Notification
	ttl      time.Duration
	now      func() time.Time
	observer Observer
}

type Option func(*Feed)

// WithClock overrides the time source used to stamp notices.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) { f.now = now }
}

// WithObserver reports the feed size to o.
func WithObserver(o Observer) Option {
	return func(f *Feed) { f.observer = o }
}

// NewFeed creates an empty feed. A non-positive ttl falls back to DefaultTTL.
func NewFeed(ttl time.Duration, opts ...Option) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	f := &Feed{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TTL returns the configured time to live.
func (f *Feed) TTL() time.Duration {
	return f.ttl
}

// Add appends a notice for evt, stamped with the feed clock.
func (f *Feed) Add(evt events.Event) Notification {
	n := Notification{
		ID:           evt.ID,
		Type:         string(evt.Type),
		Message:      evt.Message,
		OrderID:      evt.OrderID,
		VehiclePlate: evt.VehiclePlate,
		CreatedAt:    f.now().UTC(),
	}

	f.mu.Lock()
	f.items = append(f.items, n)
	size := len(f.items)
	f.mu.Unlock()

	f.report(size)
	return n
}

// List returns the notices oldest first.
func (f *Feed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

// Expire drops notices older than the ttl at instant now. Removal walks from
// the oldest notice and stops at the first one still alive. It returns the
// number of notices removed.
func (f *Feed) Expire(now time.Time) int {
	f.mu.Lock()
	cut := 0
	for cut < len(f.items) && !now.Before(f.items[cut].CreatedAt.Add(f.ttl)) {
		cut++
	}
	if cut > 0 {
		f.items = slices.Delete(f.items, 0, cut)
	}
	size := len(f.items)
	f.mu.Unlock()

	if cut > 0 {
		f.report(size)
	}
	return cut
}

func (f *Feed) report(size int) {
	if f.observer != nil {
		f.observer.SetNotifications(size)
	}
}
