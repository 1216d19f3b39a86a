package replay

import (
	"log"
	"time"

	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/domain/observer"
)

// Recorder handles input recording. It is an output resource: Update closes
// the current frame and Close writes the recording to its file.
type Recorder struct {
	path     string
	data     Data
	frame    int
	current  []Entry
	keyboard *input.Keyboard
	mouse    *input.Mouse
}

// NewRecorder creates a recorder listening to the given devices (either may
// be nil). An empty path keeps the recording in memory only.
func NewRecorder(path, gameID string, kb *input.Keyboard, mouse *input.Mouse) (*Recorder, error) {
	r := &Recorder{
		path: path,
		data: Data{
			Version:   Version,
			GameID:    gameID,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 256),
		},
		keyboard: kb,
		mouse:    mouse,
	}

	if kb != nil {
		for _, t := range []observer.EventType{input.EventKeyDown, input.EventKeyUp} {
			if _, err := kb.SubscribeObserver(t, r, r.record); err != nil {
				r.unsubscribe()
				return nil, err
			}
		}
	}
	if mouse != nil {
		for _, t := range []observer.EventType{input.EventMotion, input.EventButtonDown, input.EventButtonUp} {
			if _, err := mouse.SubscribeObserver(t, r, r.record); err != nil {
				r.unsubscribe()
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Recorder) record(e observer.Event) {
	if entry, ok := entryFromEvent(e); ok {
		r.current = append(r.current, entry)
	}
}

// Update closes the current frame.
func (r *Recorder) Update() error {
	if len(r.current) > 0 {
		r.data.Frames = append(r.data.Frames, Frame{F: r.frame, Events: r.current})
		r.current = nil
	}
	r.frame++
	r.data.Length = r.frame
	return nil
}

// Data returns the recording so far.
func (r *Recorder) Data() *Data {
	return &r.data
}

// Close stops listening and saves the recording.
func (r *Recorder) Close() error {
	r.unsubscribe()
	if r.path == "" {
		return nil
	}
	if err := Save(r.path, &r.data); err != nil {
		return err
	}
	log.Printf("[Replay] saved %d frames (%d with input) to %s", r.data.Length, len(r.data.Frames), r.path)
	return nil
}

func (r *Recorder) unsubscribe() {
	if r.keyboard != nil {
		r.keyboard.UnsubscribeObserver(r)
	}
	if r.mouse != nil {
		r.mouse.UnsubscribeObserver(r)
	}
}
