package clock

import "time"

// DeltaTime measures the time between frames and paces the loop to a
// target frame duration.
//
// The pacing policy is a variable step: each frame sleeps whatever is left of
// the target duration after update work, and a frame that overran is not
// compensated by shorter ones.
type DeltaTime struct {
	clock  Clock
	sleep  func(time.Duration)
	target time.Duration
	pacing bool

	frameStart time.Time
	lastStart  time.Time
	dt         time.Duration
	work       time.Duration
	frames     uint64
}

// NewDeltaTime creates a pacer for the given frame rate. A framerate <= 0
// disables pacing, which is what callers want when another loop (the
// window backend) already paces frames.
func NewDeltaTime(c Clock, framerate int) *DeltaTime {
	d := &DeltaTime{
		clock: c,
		sleep: time.Sleep,
	}
	if framerate > 0 {
		d.target = time.Second / time.Duration(framerate)
		d.pacing = true
	}
	return d
}

// SetSleep replaces the sleep function (tests use a manual clock advance).
func (d *DeltaTime) SetSleep(fn func(time.Duration)) {
	d.sleep = fn
}

// Update marks the start of a frame.
func (d *DeltaTime) Update() {
	now := d.clock.Now()
	if d.frames == 0 {
		d.dt = d.target
	} else {
		d.dt = now.Sub(d.lastStart)
	}
	d.lastStart = now
	d.frameStart = now
	d.frames++
}

// Accumulate records how much of the frame budget update work consumed.
func (d *DeltaTime) Accumulate() {
	d.work = d.clock.Now().Sub(d.frameStart)
}

// Sync sleeps until the target frame duration has elapsed since Update.
func (d *DeltaTime) Sync() {
	if !d.pacing {
		return
	}
	if rest := d.target - d.work; rest > 0 {
		d.sleep(rest)
	}
}

// Dt returns the duration of the previous frame.
func (d *DeltaTime) Dt() time.Duration { return d.dt }

// Seconds returns Dt in seconds.
func (d *DeltaTime) Seconds() float64 { return d.dt.Seconds() }

// Target returns the target frame duration (0 when pacing is disabled).
func (d *DeltaTime) Target() time.Duration { return d.target }

// Frames returns the number of frames started.
func (d *DeltaTime) Frames() uint64 { return d.frames }
