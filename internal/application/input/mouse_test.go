package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/impala/internal/domain/geom"
	"github.com/younwookim/impala/internal/domain/observer"
)

func TestMouse_DispatchOrder(t *testing.T) {
	m := NewMouse(0)
	rect := geom.NewRect(0, 0, 20, 20)
	var seen []observer.EventType
	var downInsideAtUp bool

	_, err := m.Subscribe(EventButtonDown, func(e observer.Event) { seen = append(seen, e.EventType()) })
	require.NoError(t, err)
	_, err = m.Subscribe(EventButtonUp, func(e observer.Event) {
		seen = append(seen, e.EventType())
		downInsideAtUp = m.IsMouseDownInside(rect)
	})
	require.NoError(t, err)

	m.ButtonDown(10, 10, ButtonLeft)
	m.ButtonUp(10, 10, ButtonLeft)
	assert.False(t, m.IsPressed(ButtonLeft), "state only changes on Update")

	require.NoError(t, m.Update())

	assert.Equal(t, []observer.EventType{EventButtonDown, EventButtonUp}, seen)
	assert.True(t, downInsideAtUp, "down position is recorded before later events")
	assert.True(t, m.IsMouseDownInside(rect))
	assert.False(t, m.IsPressed(ButtonLeft))

	// a later press elsewhere replaces the down snapshot
	m.ButtonDown(50, 50, ButtonLeft)
	assert.True(t, m.IsMouseDownInside(rect), "queued press is not visible yet")
	require.NoError(t, m.Update())
	assert.False(t, m.IsMouseDownInside(rect))
	assert.True(t, m.IsPressed(ButtonLeft))
}

func TestMouse_MotionAndDeltas(t *testing.T) {
	m := NewMouse(0)
	var motions []MouseEvent
	_, err := m.Subscribe(EventMotion, func(e observer.Event) { motions = append(motions, e.(MouseEvent)) })
	require.NoError(t, err)

	m.Move(5, 5)
	m.ButtonDown(5, 5, ButtonRight)
	m.Move(15, 25)
	require.NoError(t, m.Update())

	require.Len(t, motions, 2)
	assert.Equal(t, ButtonNone, motions[0].Button)
	assert.Equal(t, 15, m.X())
	assert.Equal(t, 25, m.Y())
	assert.Equal(t, 5, m.DownX())
	assert.Equal(t, 5, m.DownY())
	assert.Equal(t, 10, m.DeltaX())
	assert.Equal(t, 20, m.DeltaY())
	assert.True(t, m.IsPressed(ButtonRight))
	assert.True(t, m.IsMouseInside(geom.NewRect(10, 20, 10, 10)))
	assert.False(t, m.IsMouseInside(geom.NewRect(0, 0, 10, 10)))
}

func TestMouse_DropsInvalidButtons(t *testing.T) {
	m := NewMouse(2)
	calls := 0
	_, err := m.Subscribe(EventButtonDown, func(observer.Event) { calls++ })
	require.NoError(t, err)

	m.ButtonDown(1, 1, 7)
	m.ButtonDown(1, 1, -3)
	m.Enqueue(MouseEvent{Type: "mouse.bogus"})
	m.ButtonDown(2, 2, ButtonRight)

	require.NoError(t, m.Update())

	assert.Equal(t, 1, calls, "only the valid press is broadcast")
	assert.False(t, m.IsPressed(7))
	assert.True(t, m.IsPressed(ButtonRight))
	assert.Equal(t, 2, m.DownX())
}

func TestMouse_ConcurrentEnqueue(t *testing.T) {
	m := NewMouse(0)
	count := 0
	_, err := m.Subscribe(EventMotion, func(observer.Event) { count++ })
	require.NoError(t, err)

	const producers, perProducer = 8, 100
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				m.Move(i, i)
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	// drain while producers run, then once more after they finish
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		require.NoError(t, m.Update())
	}
	require.NoError(t, m.Update())

	assert.Equal(t, producers*perProducer, count)
	assert.Equal(t, 0, m.Pending())
}
