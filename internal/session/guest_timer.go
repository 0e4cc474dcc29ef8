package session

import (
	"sync"
	"time"
)

// DefaultGuestSessionDuration is the guest expiry used when settings carry
// no override
const DefaultGuestSessionDuration = 30 * time.Minute

// GuestTimer is the single-shot guest-session countdown. Start arms it,
// Cancel disarms it; the expiry callback runs at most once per arming and
// never after a cancellation, even if the underlying timer had already
// fired into its goroutine.
type GuestTimer struct {
	mu         sync.Mutex
	timer      *time.Timer
	generation int
}

// NewGuestTimer creates a disarmed timer
func NewGuestTimer() *GuestTimer {
	return &GuestTimer{}
}

// Start arms the countdown. Any previously armed countdown is disarmed
// first, so a stale timer can never fire for a new session.
func (t *GuestTimer) Start(d time.Duration, onExpire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.generation++
	gen := t.generation

	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		live := t.generation == gen
		if live {
			// Consume the arming so a second fire is impossible.
			t.generation++
		}
		t.mu.Unlock()

		if live {
			onExpire()
		}
	})
}

// Cancel disarms the countdown. Safe to call repeatedly and when disarmed.
func (t *GuestTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
}
