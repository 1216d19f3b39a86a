package input

import (
	"fmt"
	"log"

	"github.com/younwookim/impala/internal/domain/observer"
)

// Keyboard event types.
const (
	EventKeyDown         observer.EventType = "keyboard.down"
	EventKeyUp           observer.EventType = "keyboard.up"
	EventRemoteConnected observer.EventType = "keyboard.remote.connected"
	EventRemoteClosed    observer.EventType = "keyboard.remote.closed"
)

// LocalSender is the Sender of events coming from the local device.
const LocalSender = ""

// KeyEvent is a key press or release.
type KeyEvent struct {
	Type   observer.EventType
	Key    Key
	Char   rune
	Sender string // LocalSender or a remote device id
}

// EventType implements observer.Event.
func (e KeyEvent) EventType() observer.EventType { return e.Type }

// IsConfirm reports whether the event carries the confirm (Enter) key.
func (e KeyEvent) IsConfirm() bool {
	return e.Key == KeyEnter || e.Char == '\n' || e.Char == '\r'
}

// RemoteEvent reports a remote keyboard connecting or going away.
// It is informational only; it does not change the keyboard state.
type RemoteEvent struct {
	Type   observer.EventType
	Sender string
}

// EventType implements observer.Event.
func (e RemoteEvent) EventType() observer.EventType { return e.Type }

// Keyboard is the keyboard input resource. Local and remote keyboards
// feed the same pressed-key state.
type Keyboard struct {
	*observer.Observations

	queue   Queue[observer.Event]
	drivers []Driver
	pressed map[Key]bool
	remotes map[string]struct{}
}

// NewKeyboard creates an idle keyboard.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		Observations: observer.New(EventKeyDown, EventKeyUp, EventRemoteConnected, EventRemoteClosed),
		pressed:      make(map[Key]bool),
		remotes:      make(map[string]struct{}),
	}
}

// KeyDown queues a local key press.
func (k *Keyboard) KeyDown(key Key, char rune) {
	k.queue.Push(KeyEvent{Type: EventKeyDown, Key: key, Char: char})
}

// KeyUp queues a local key release.
func (k *Keyboard) KeyUp(key Key, char rune) {
	k.queue.Push(KeyEvent{Type: EventKeyUp, Key: key, Char: char})
}

// RemoteConnected queues the arrival of a remote keyboard.
func (k *Keyboard) RemoteConnected(sender string) {
	k.queue.Push(RemoteEvent{Type: EventRemoteConnected, Sender: sender})
}

// RemoteClosed queues the departure of a remote keyboard.
func (k *Keyboard) RemoteClosed(sender string) {
	k.queue.Push(RemoteEvent{Type: EventRemoteClosed, Sender: sender})
}

// RemoteKeyDown queues a key press from a remote keyboard.
func (k *Keyboard) RemoteKeyDown(sender string, key Key, char rune) {
	if key == KeyUnknown {
		key = KeyFromRune(char)
	}
	k.queue.Push(KeyEvent{Type: EventKeyDown, Key: key, Char: char, Sender: sender})
}

// RemoteKeyUp queues a key release from a remote keyboard.
func (k *Keyboard) RemoteKeyUp(sender string, key Key, char rune) {
	if key == KeyUnknown {
		key = KeyFromRune(char)
	}
	k.queue.Push(KeyEvent{Type: EventKeyUp, Key: key, Char: char, Sender: sender})
}

// AddDriver attaches a driver polled at the start of every Update.
func (k *Keyboard) AddDriver(d Driver) {
	k.drivers = append(k.drivers, d)
}

// Enqueue queues an already built keyboard event. Used by replays.
func (k *Keyboard) Enqueue(e observer.Event) {
	k.queue.Push(e)
}

// Pending returns the number of queued events.
func (k *Keyboard) Pending() int {
	return k.queue.Len()
}

// Update drains the queue, updating pressed flags before broadcasting
// each event.
func (k *Keyboard) Update() error {
	for _, d := range k.drivers {
		d.Poll()
	}
	for _, e := range k.queue.Drain() {
		switch ev := e.(type) {
		case KeyEvent:
			switch ev.Type {
			case EventKeyDown:
				k.pressed[ev.Key] = true
			case EventKeyUp:
				delete(k.pressed, ev.Key)
			default:
				log.Printf("[Input] dropping keyboard event with type %q", ev.Type)
				continue
			}
		case RemoteEvent:
			switch ev.Type {
			case EventRemoteConnected:
				k.remotes[ev.Sender] = struct{}{}
			case EventRemoteClosed:
				delete(k.remotes, ev.Sender)
			default:
				log.Printf("[Input] dropping remote event with type %q", ev.Type)
				continue
			}
		default:
			log.Printf("[Input] dropping unsupported keyboard event %T", e)
			continue
		}
		if err := k.Broadcast(e); err != nil {
			return fmt.Errorf("keyboard: %w", err)
		}
	}
	return nil
}

// IsPressed reports whether key was held as of the last Update.
func (k *Keyboard) IsPressed(key Key) bool {
	return k.pressed[key]
}

// Remotes returns the number of connected remote keyboards.
func (k *Keyboard) Remotes() int {
	return len(k.remotes)
}

// Close releases the device. The keyboard holds no OS resources.
func (k *Keyboard) Close() error {
	return nil
}
