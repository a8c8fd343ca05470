package usecase

import (
	"context"
	"fmt"
	"time"
)

// BrewTimer is a one-second-resolution countdown for the rest step.
type BrewTimer struct {
	remaining time.Duration
	running   bool
	done      bool
}

// NewBrewTimer returns a stopped timer set to d, truncated to whole seconds.
func NewBrewTimer(d time.Duration) *BrewTimer {
	return &BrewTimer{remaining: d.Truncate(time.Second)}
}

// Toggle starts or pauses the countdown. A finished timer stays stopped.
func (t *BrewTimer) Toggle() {
	if t.done {
		return
	}
	t.running = !t.running
}

// Running reports whether the countdown is active.
func (t *BrewTimer) Running() bool { return t.running }

// Done reports whether the countdown reached zero.
func (t *BrewTimer) Done() bool { return t.done }

// Remaining returns the time left.
func (t *BrewTimer) Remaining() time.Duration { return t.remaining }

// AddMinute extends the countdown by one minute.
func (t *BrewTimer) AddMinute() {
	t.remaining += time.Minute
	t.done = false
}

// SubMinute shortens the countdown by one minute, never below one minute.
func (t *BrewTimer) SubMinute() {
	t.remaining = max(t.remaining-time.Minute, time.Minute)
	t.done = false
}

// Tick advances a running timer by one second. It returns true on the tick that
// finishes the countdown.
func (t *BrewTimer) Tick() bool {
	if !t.running || t.done {
		return false
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.running = false
	t.done = true
	return true
}

// String renders the remaining time as MM:SS.
func (t *BrewTimer) String() string {
	secs := int(t.remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Run starts the timer and ticks it once per value received on ticks until it
// finishes or ctx is done. onTick, if set, sees the timer after every tick.
func (t *BrewTimer) Run(ctx context.Context, ticks <-chan time.Time, onTick func(*BrewTimer)) error {
	if !t.running {
		t.Toggle()
	}
	for !t.done {
		select {
		case <-ctx.Done():
			t.running = false
			return ctx.Err()
		case <-ticks:
			t.Tick()
			if onTick != nil {
				onTick(t)
			}
		}
	}
	return nil
}
