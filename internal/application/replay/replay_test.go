package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/domain/observer"
)

func TestRecorder_RecordsPerFrame(t *testing.T) {
	kb := input.NewKeyboard()
	mouse := input.NewMouse(0)
	rec, err := NewRecorder("", "test", kb, mouse)
	require.NoError(t, err)

	// frame 0: key press
	kb.KeyDown(input.KeyA, 'a')
	require.NoError(t, kb.Update())
	require.NoError(t, mouse.Update())
	require.NoError(t, rec.Update())

	// frame 1: nothing
	require.NoError(t, kb.Update())
	require.NoError(t, rec.Update())

	// frame 2: remote notice (not recorded) and a click
	kb.RemoteConnected("phone")
	mouse.ButtonDown(10, 20, input.ButtonLeft)
	require.NoError(t, kb.Update())
	require.NoError(t, mouse.Update())
	require.NoError(t, rec.Update())

	data := rec.Data()
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 3, data.Length)
	require.Len(t, data.Frames, 2)
	assert.Equal(t, Frame{F: 0, Events: []Entry{{K: KindKeyDown, Key: int(input.KeyA), C: 'a'}}}, data.Frames[0])
	assert.Equal(t, Frame{F: 2, Events: []Entry{{K: KindMouseDown, X: 10, Y: 20, B: input.ButtonLeft}}}, data.Frames[1])
}

func TestRecorder_CloseStopsRecordingAndSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	kb := input.NewKeyboard()
	rec, err := NewRecorder(path, "test", kb, nil)
	require.NoError(t, err)

	kb.KeyDown(input.KeyEnter, '\r')
	require.NoError(t, kb.Update())
	require.NoError(t, rec.Update())
	require.NoError(t, rec.Close())

	assert.Equal(t, 0, kb.Count(input.EventKeyDown))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test", loaded.GameID)
	assert.Equal(t, 1, loaded.Length)
	require.Len(t, loaded.Frames, 1)
	assert.Equal(t, KindKeyDown, loaded.Frames[0].Events[0].K)
	assert.Equal(t, '\r', loaded.Frames[0].Events[0].C)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPlayer_FeedsDevices(t *testing.T) {
	data := Data{
		Version: Version,
		Length:  4,
		Frames: []Frame{
			{F: 0, Events: []Entry{{K: KindKeyDown, Key: int(input.KeyA), C: 'a'}}},
			{F: 2, Events: []Entry{
				{K: KindMotion, X: 5, Y: 6},
				{K: KindMouseDown, X: 5, Y: 6, B: input.ButtonRight},
				{K: KindKeyUp, Key: int(input.KeyA), C: 'a'},
			}},
		},
	}

	kb := input.NewKeyboard()
	mouse := input.NewMouse(0)
	p := NewPlayer(data, kb, mouse)

	var keys []input.KeyEvent
	for _, et := range []observer.EventType{input.EventKeyDown, input.EventKeyUp} {
		_, err := kb.Subscribe(et, func(e observer.Event) { keys = append(keys, e.(input.KeyEvent)) })
		require.NoError(t, err)
	}

	// Devices update before the player, so recorded frame N lands in N+1.
	frame := func() {
		require.NoError(t, kb.Update())
		require.NoError(t, mouse.Update())
		require.NoError(t, p.Update())
	}

	frame() // 0
	assert.Empty(t, keys)
	assert.Equal(t, 1, kb.Pending())

	frame() // 1
	assert.True(t, kb.IsPressed(input.KeyA))

	frame() // 2
	frame() // 3
	assert.False(t, kb.IsPressed(input.KeyA))
	assert.True(t, mouse.IsPressed(input.ButtonRight))
	assert.Equal(t, 5, mouse.X())
	assert.Equal(t, 6, mouse.DownY())
	require.Len(t, keys, 2)
	assert.Equal(t, input.EventKeyUp, keys[1].Type)

	assert.True(t, p.Done())
	assert.Equal(t, 4, p.CurrentFrame())
	assert.Equal(t, 4, p.TotalFrames())

	p.Reset()
	assert.False(t, p.Done())
	assert.Equal(t, 0, p.CurrentFrame())
}

func TestPlayer_MissingDeviceSkipped(t *testing.T) {
	data := Data{Length: 1, Frames: []Frame{{F: 0, Events: []Entry{
		{K: KindMotion, X: 1, Y: 1},
		{K: "zz"},
	}}}}

	kb := input.NewKeyboard()
	p := NewPlayer(data, kb, nil)

	require.NoError(t, p.Update())
	assert.Equal(t, 0, kb.Pending())
	assert.True(t, p.Done())
}
