package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Unix(1000, 0)
	m := NewManual(start)

	assert.Equal(t, start, m.Now())

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, start.Add(250*time.Millisecond), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}

func TestDeltaTime_SleepsRemainder(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	d := NewDeltaTime(m, 50) // 20ms frames
	var slept []time.Duration
	d.SetSleep(func(s time.Duration) {
		slept = append(slept, s)
		m.Advance(s)
	})

	d.Update()
	m.Advance(5 * time.Millisecond)
	d.Accumulate()
	d.Sync()

	assert.Equal(t, []time.Duration{15 * time.Millisecond}, slept)
	assert.Equal(t, 20*time.Millisecond, d.Dt(), "first frame reports the target")

	d.Update()
	assert.Equal(t, 20*time.Millisecond, d.Dt())
	assert.InDelta(t, 0.02, d.Seconds(), 1e-9)
	assert.Equal(t, uint64(2), d.Frames())
}

func TestDeltaTime_OverrunDoesNotSleep(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	d := NewDeltaTime(m, 50)
	sleeps := 0
	d.SetSleep(func(time.Duration) { sleeps++ })

	d.Update()
	m.Advance(30 * time.Millisecond)
	d.Accumulate()
	d.Sync()

	assert.Equal(t, 0, sleeps)
}

func TestDeltaTime_PacingDisabled(t *testing.T) {
	m := NewManual(time.Unix(0, 0))
	d := NewDeltaTime(m, 0)
	sleeps := 0
	d.SetSleep(func(time.Duration) { sleeps++ })

	d.Update()
	d.Accumulate()
	d.Sync()

	assert.Equal(t, 0, sleeps)
	assert.Equal(t, time.Duration(0), d.Target())

	m.Advance(16 * time.Millisecond)
	d.Update()
	assert.Equal(t, 16*time.Millisecond, d.Dt())
}
