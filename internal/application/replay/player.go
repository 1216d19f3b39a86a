package replay

import (
	"log"

	"github.com/younwookim/impala/internal/application/input"
)

// Player handles input playback from recorded data. It is an input resource
// and must be listed after the devices it feeds.
type Player struct {
	data     Data
	frame    int
	next     int // index into data.Frames
	keyboard *input.Keyboard
	mouse    *input.Mouse
}

// NewPlayer creates a player feeding the given devices (either may be nil;
// events for a missing device are skipped).
func NewPlayer(data Data, kb *input.Keyboard, mouse *input.Mouse) *Player {
	return &Player{
		data:     data,
		keyboard: kb,
		mouse:    mouse,
	}
}

// Update enqueues the events recorded for the current frame and advances.
func (p *Player) Update() error {
	for p.next < len(p.data.Frames) && p.data.Frames[p.next].F <= p.frame {
		for _, e := range p.data.Frames[p.next].Events {
			p.enqueue(e)
		}
		p.next++
	}
	p.frame++
	return nil
}

func (p *Player) enqueue(e Entry) {
	switch e.K {
	case KindKeyDown, KindKeyUp:
		if p.keyboard == nil {
			return
		}
		t := input.EventKeyDown
		if e.K == KindKeyUp {
			t = input.EventKeyUp
		}
		p.keyboard.Enqueue(input.KeyEvent{Type: t, Key: input.Key(e.Key), Char: e.C, Sender: e.S})
	case KindMotion, KindMouseDown, KindMouseUp:
		if p.mouse == nil {
			return
		}
		ev := input.MouseEvent{X: e.X, Y: e.Y, Button: e.B}
		switch e.K {
		case KindMotion:
			ev.Type, ev.Button = input.EventMotion, input.ButtonNone
		case KindMouseDown:
			ev.Type = input.EventButtonDown
		default:
			ev.Type = input.EventButtonUp
		}
		p.mouse.Enqueue(ev)
	default:
		log.Printf("[Replay] skipping entry of kind %q", e.K)
	}
}

// CurrentFrame returns the current frame number
func (p *Player) CurrentFrame() int {
	return p.frame
}

// TotalFrames returns the total number of recorded frames
func (p *Player) TotalFrames() int {
	return p.data.Length
}

// Done reports whether every recorded frame has been played.
func (p *Player) Done() bool {
	return p.frame >= p.data.Length && p.next >= len(p.data.Frames)
}

// Reset resets the player to the beginning
func (p *Player) Reset() {
	p.frame = 0
	p.next = 0
}

// Close implements the input resource contract.
func (p *Player) Close() error {
	return nil
}
