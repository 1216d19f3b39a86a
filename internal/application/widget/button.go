// Package widget provides UI widgets built on the input resources.
package widget

import (
	"fmt"
	"log"
	"time"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/application/timer"
	"github.com/younwookim/impala/internal/domain/geom"
	"github.com/younwookim/impala/internal/domain/observer"
)

// EventClicked is broadcast, without payload, when a button is clicked.
const EventClicked observer.EventType = "CLICKED"

// ConfirmDelay is how long a keyboard-confirmed button blinks before it
// fires EventClicked.
const ConfirmDelay = 200 * time.Millisecond

// Visual is the look a button should be drawn with this frame.
type Visual int

const (
	VisualIdle Visual = iota
	VisualHover
	VisualPressed
	VisualDisabled
)

// String returns the visual name.
func (v Visual) String() string {
	switch v {
	case VisualIdle:
		return "Idle"
	case VisualHover:
		return "Hover"
	case VisualPressed:
		return "Pressed"
	case VisualDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

// Button turns mouse and keyboard input over a rectangle into click events.
//
// A click is a left press and release that both land inside the rectangle
// while the button stays enabled. A selected button also clicks on the
// confirm key, after blinking for ConfirmDelay.
type Button struct {
	*observer.Observations

	keyboard  *input.Keyboard
	mouse     *input.Mouse
	rect      geom.Rect
	countdown *timer.Countdown

	visual     Visual
	enabled    bool
	wasEnabled bool
	clicked    bool
	hover      bool
	toggle     bool
	centered   bool

	// Selected gives the button keyboard focus.
	Selected bool
	// Hidden buttons are skipped by renderers. They still track input.
	Hidden bool
}

// NewButton creates an enabled button covering rect and subscribes it to
// both devices. Call Delete to unsubscribe.
func NewButton(kb *input.Keyboard, mouse *input.Mouse, rect geom.Rect, c clock.Clock) (*Button, error) {
	b := &Button{
		Observations: observer.New(EventClicked),
		keyboard:     kb,
		mouse:        mouse,
		rect:         rect,
		countdown:    timer.New(c),
		enabled:      true,
		wasEnabled:   true,
	}

	subs := []struct {
		subject observer.Subject
		event   observer.EventType
		handler observer.Handler
	}{
		{kb, input.EventKeyDown, b.handleKeyDown},
		{mouse, input.EventButtonDown, b.handleMouseDown},
		{mouse, input.EventButtonUp, b.handleMouseUp},
		{b.countdown, timer.EventComplete, b.handleTimerDone},
	}
	for _, s := range subs {
		if _, err := s.subject.SubscribeObserver(s.event, b, s.handler); err != nil {
			b.Delete()
			return nil, fmt.Errorf("button: %w", err)
		}
	}
	return b, nil
}

// Delete unsubscribes the button from its devices.
func (b *Button) Delete() {
	b.keyboard.UnsubscribeObserver(b)
	b.mouse.UnsubscribeObserver(b)
	b.countdown.UnsubscribeObserver(b)
}

// Update advances the confirm timer and computes this frame's visual.
func (b *Button) Update() error {
	if !b.enabled {
		return nil
	}
	if err := b.countdown.Update(); err != nil {
		return err
	}

	inside := b.mouse.IsMouseInside(b.rect)
	switch {
	case b.clicked:
		b.clicked = false
		b.visual = VisualPressed
		b.hover = false
	case !inside:
		b.visual = VisualIdle
		b.hover = false
	case !b.mouse.IsPressed(input.ButtonLeft):
		b.visual = VisualHover
		b.hover = true
	case b.mouse.IsMouseDownInside(b.rect):
		b.visual = VisualPressed
		b.hover = false
	default:
		b.visual = VisualIdle
		b.hover = false
	}

	if b.Selected {
		if b.countdown.State() != timer.Idle {
			b.toggle = !b.toggle
			if b.toggle {
				b.visual = VisualHover
			} else {
				b.visual = VisualPressed
			}
		} else if !inside {
			b.visual = VisualHover
		}
	}
	return nil
}

// Visual returns the look computed by the last Update.
func (b *Button) Visual() Visual {
	if !b.enabled {
		return VisualDisabled
	}
	return b.visual
}

// Hovered reports whether the cursor rested on the button at the last Update.
func (b *Button) Hovered() bool { return b.hover }

// Enable enables or disables the button. A disabled button ignores input,
// and a press made while disabled never becomes a click.
func (b *Button) Enable(enable bool) {
	b.enabled = enable
	if !enable {
		b.wasEnabled = false
		b.clicked = false
		b.visual = VisualDisabled
	} else if b.visual == VisualDisabled {
		b.visual = VisualIdle
	}
}

// IsEnabled reports whether the button accepts input.
func (b *Button) IsEnabled() bool { return b.enabled }

// Rect returns the hit rectangle.
func (b *Button) Rect() geom.Rect { return b.rect }

// SetPos moves the button. When centered, (x, y) is the button center.
func (b *Button) SetPos(x, y int) {
	if b.centered {
		x -= b.rect.Width / 2
		y -= b.rect.Height / 2
	}
	b.rect = b.rect.Moved(x, y)
}

// SetCentered selects center anchoring for later SetPos calls.
func (b *Button) SetCentered(centered bool) {
	b.centered = centered
}

// Countdown exposes the confirm timer, mainly for blink-aware renderers.
func (b *Button) Countdown() *timer.Countdown { return b.countdown }

func (b *Button) handleKeyDown(e observer.Event) {
	ev, ok := e.(input.KeyEvent)
	if !ok || !ev.IsConfirm() {
		return
	}
	if b.Selected && b.enabled {
		b.countdown.Start(ConfirmDelay)
	}
}

func (b *Button) handleMouseDown(e observer.Event) {
	ev, ok := e.(input.MouseEvent)
	if !ok || ev.Button != input.ButtonLeft {
		return
	}
	if !b.mouse.IsMouseDownInside(b.rect) {
		return
	}
	if !b.enabled {
		b.wasEnabled = false
		return
	}
	b.wasEnabled = true
	b.clicked = true
}

func (b *Button) handleMouseUp(e observer.Event) {
	ev, ok := e.(input.MouseEvent)
	if !ok || ev.Button != input.ButtonLeft {
		return
	}
	if !b.mouse.IsMouseDownInside(b.rect) || !ev.Inside(b.rect) {
		return
	}
	if !b.enabled || !b.wasEnabled {
		return
	}
	b.clicked = true
	b.fire()
}

func (b *Button) handleTimerDone(observer.Event) {
	b.fire()
}

func (b *Button) fire() {
	if err := b.Notify(EventClicked); err != nil {
		log.Printf("[Widget] click broadcast failed: %v", err)
	}
}
