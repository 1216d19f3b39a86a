// Package replay records the raw input events of a run and plays them back.
//
// A Recorder is an output resource: it listens to the keyboard and mouse and
// stores, per frame, the events those devices dispatched. A Player is an
// input resource that re-enqueues the stored events into the devices.
// Played events reach subscribers one frame after the frame they were
// recorded in, because the player is updated after the devices it feeds.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/domain/observer"
)

// Version is written into every recording.
const Version = "1.0"

// Entry kinds
const (
	KindKeyDown   = "kd"
	KindKeyUp     = "ku"
	KindMotion    = "mm"
	KindMouseDown = "md"
	KindMouseUp   = "mu"
)

// Entry records a single raw input event
type Entry struct {
	K   string `json:"k"`             // Kind
	Key int    `json:"key,omitempty"` // Keyboard key
	C   rune   `json:"c,omitempty"`   // Character
	S   string `json:"s,omitempty"`   // Sender (remote keyboards)
	X   int    `json:"x,omitempty"`   // Mouse X
	Y   int    `json:"y,omitempty"`   // Mouse Y
	B   int    `json:"b,omitempty"`   // Mouse button
}

// Frame holds the events dispatched during one frame
type Frame struct {
	F      int     `json:"f"` // Frame number
	Events []Entry `json:"e"`
}

// Data contains all data needed to replay a session. Frames without
// events are omitted.
type Data struct {
	Version   string  `json:"version"`
	GameID    string  `json:"gameId"`
	StartTime string  `json:"startTime"`
	Length    int     `json:"length"` // Number of frames recorded
	Frames    []Frame `json:"frames"`
}

// Load reads replay data from a file
func Load(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Save writes replay data to a file
func Save(filename string, data *Data) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// entryFromEvent converts a dispatched device event. ok is false for events
// that are not replayed (remote connect/close notices).
func entryFromEvent(e observer.Event) (Entry, bool) {
	switch ev := e.(type) {
	case input.KeyEvent:
		kind := KindKeyDown
		if ev.Type == input.EventKeyUp {
			kind = KindKeyUp
		}
		return Entry{K: kind, Key: int(ev.Key), C: ev.Char, S: ev.Sender}, true
	case input.MouseEvent:
		switch ev.Type {
		case input.EventMotion:
			return Entry{K: KindMotion, X: ev.X, Y: ev.Y}, true
		case input.EventButtonDown:
			return Entry{K: KindMouseDown, X: ev.X, Y: ev.Y, B: ev.Button}, true
		case input.EventButtonUp:
			return Entry{K: KindMouseUp, X: ev.X, Y: ev.Y, B: ev.Button}, true
		}
	}
	return Entry{}, false
}
