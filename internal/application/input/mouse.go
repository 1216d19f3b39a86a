package input

import (
	"fmt"
	"log"

	"github.com/younwookim/impala/internal/domain/geom"
	"github.com/younwookim/impala/internal/domain/observer"
)

// Mouse event types.
const (
	EventMotion     observer.EventType = "mouse.motion"
	EventButtonDown observer.EventType = "mouse.down"
	EventButtonUp   observer.EventType = "mouse.up"
)

// Mouse buttons.
const (
	ButtonNone   = -1 // motion events carry no button
	ButtonLeft   = 0
	ButtonRight  = 1
	ButtonMiddle = 2
)

// DefaultButtons is the number of buttons NewMouse(0) tracks.
const DefaultButtons = 3

// MouseEvent is a motion or button change at a screen position.
type MouseEvent struct {
	Type   observer.EventType
	X, Y   int
	Button int
}

// EventType implements observer.Event.
func (e MouseEvent) EventType() observer.EventType { return e.Type }

// Inside reports whether the event position lies inside rect.
func (e MouseEvent) Inside(rect geom.Rect) bool {
	return rect.Contains(e.X, e.Y)
}

// Mouse is the mouse input resource.
type Mouse struct {
	*observer.Observations

	queue        Queue[MouseEvent]
	drivers      []Driver
	x, y         int
	downX, downY int
	buttons      []bool
}

// NewMouse creates a mouse tracking the given number of buttons
// (DefaultButtons when buttons <= 0).
func NewMouse(buttons int) *Mouse {
	if buttons <= 0 {
		buttons = DefaultButtons
	}
	return &Mouse{
		Observations: observer.New(EventMotion, EventButtonDown, EventButtonUp),
		buttons:      make([]bool, buttons),
	}
}

// Move queues a cursor motion.
func (m *Mouse) Move(x, y int) {
	m.queue.Push(MouseEvent{Type: EventMotion, X: x, Y: y, Button: ButtonNone})
}

// ButtonDown queues a button press at (x, y).
func (m *Mouse) ButtonDown(x, y, button int) {
	m.queue.Push(MouseEvent{Type: EventButtonDown, X: x, Y: y, Button: button})
}

// ButtonUp queues a button release at (x, y).
func (m *Mouse) ButtonUp(x, y, button int) {
	m.queue.Push(MouseEvent{Type: EventButtonUp, X: x, Y: y, Button: button})
}

// AddDriver attaches a driver polled at the start of every Update.
func (m *Mouse) AddDriver(d Driver) {
	m.drivers = append(m.drivers, d)
}

// Enqueue queues an already built mouse event. Used by replays.
func (m *Mouse) Enqueue(e MouseEvent) {
	m.queue.Push(e)
}

// Pending returns the number of queued events.
func (m *Mouse) Pending() int {
	return m.queue.Len()
}

// Update drains the queue in order. For every event the derived state is
// updated first, so handlers already see it.
func (m *Mouse) Update() error {
	for _, d := range m.drivers {
		d.Poll()
	}
	for _, e := range m.queue.Drain() {
		switch e.Type {
		case EventMotion:
			m.x, m.y = e.X, e.Y
		case EventButtonDown:
			if !m.validButton(e.Button) {
				log.Printf("[Input] dropping mouse down for button %d", e.Button)
				continue
			}
			m.buttons[e.Button] = true
			m.downX, m.downY = e.X, e.Y
		case EventButtonUp:
			if !m.validButton(e.Button) {
				log.Printf("[Input] dropping mouse up for button %d", e.Button)
				continue
			}
			m.buttons[e.Button] = false
		default:
			log.Printf("[Input] dropping mouse event with type %q", e.Type)
			continue
		}
		if err := m.Broadcast(e); err != nil {
			return fmt.Errorf("mouse: %w", err)
		}
	}
	return nil
}

func (m *Mouse) validButton(b int) bool {
	return b >= 0 && b < len(m.buttons)
}

// X returns the cursor x as of the last Update.
func (m *Mouse) X() int { return m.x }

// Y returns the cursor y as of the last Update.
func (m *Mouse) Y() int { return m.y }

// DownX returns the x of the most recent button press.
func (m *Mouse) DownX() int { return m.downX }

// DownY returns the y of the most recent button press.
func (m *Mouse) DownY() int { return m.downY }

// DeltaX is the cursor travel along x since the most recent button press.
func (m *Mouse) DeltaX() int { return m.x - m.downX }

// DeltaY is the cursor travel along y since the most recent button press.
func (m *Mouse) DeltaY() int { return m.y - m.downY }

// IsPressed reports whether button is held. Unknown buttons are never held.
func (m *Mouse) IsPressed(button int) bool {
	return m.validButton(button) && m.buttons[button]
}

// IsMouseInside tests the cursor position against rect.
func (m *Mouse) IsMouseInside(rect geom.Rect) bool {
	return rect.Contains(m.x, m.y)
}

// IsMouseDownInside tests the position of the most recent press against rect.
func (m *Mouse) IsMouseDownInside(rect geom.Rect) bool {
	return rect.Contains(m.downX, m.downY)
}

// Close releases the device. The mouse holds no OS resources.
func (m *Mouse) Close() error {
	return nil
}
