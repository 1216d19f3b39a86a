// Package timer provides a frame-driven countdown that announces its
// expiry through the observer package.
package timer

import (
	"time"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/domain/observer"
)

// EventComplete is broadcast, without payload, when a countdown expires.
const EventComplete observer.EventType = "countdown.complete"

// State is the countdown state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Countdown counts down to a deadline. It never fires by itself: Update
// must be called once per frame.
//
// Remaining time (Time) and completion (Update) are separate so callers can
// poll the remaining time for animation without consuming the completion.
type Countdown struct {
	*observer.Observations

	clock    clock.Clock
	started  bool
	paused   bool
	deadline time.Time
	pausedAt time.Time
}

// New creates an idle countdown reading time from c.
func New(c clock.Clock) *Countdown {
	return &Countdown{
		Observations: observer.New(EventComplete),
		clock:        c,
	}
}

// Start (re)starts the countdown for d. Non-positive durations are ignored.
func (c *Countdown) Start(d time.Duration) {
	if d <= 0 {
		return
	}
	c.started = true
	c.paused = false
	c.deadline = c.clock.Now().Add(d)
}

// Pause freezes a running countdown.
func (c *Countdown) Pause() {
	if c.State() != Running {
		return
	}
	c.paused = true
	c.pausedAt = c.clock.Now()
}

// Resume continues a paused countdown, shifting the deadline by the time
// spent paused.
func (c *Countdown) Resume() {
	if c.State() != Paused {
		return
	}
	c.paused = false
	c.deadline = c.deadline.Add(c.clock.Now().Sub(c.pausedAt))
}

// Reset stops the countdown.
func (c *Countdown) Reset() {
	c.started = false
	c.paused = false
}

// State returns the current state.
func (c *Countdown) State() State {
	switch {
	case !c.started:
		return Idle
	case c.paused:
		return Paused
	default:
		return Running
	}
}

// Time returns the remaining time: zero when idle, frozen while paused.
// A running countdown past its deadline but not yet updated reports a
// non-positive value.
func (c *Countdown) Time() time.Duration {
	switch c.State() {
	case Paused:
		return c.deadline.Sub(c.pausedAt)
	case Running:
		return c.deadline.Sub(c.clock.Now())
	default:
		return 0
	}
}

// Update fires EventComplete once when a running countdown reaches its
// deadline, leaving it idle.
func (c *Countdown) Update() error {
	if c.State() != Running || c.clock.Now().Before(c.deadline) {
		return nil
	}
	c.started = false
	return c.Notify(EventComplete)
}
