package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/impala/internal/application/game"
	"github.com/younwookim/impala/internal/application/input"
	"github.com/younwookim/impala/internal/application/scene"
	"github.com/younwookim/impala/internal/application/timer"
	"github.com/younwookim/impala/internal/domain/observer"
	"github.com/younwookim/impala/internal/infrastructure/ebitenio"
)

// Scene names used in settings.yaml
const (
	sceneTitle   = "title"
	scenePlaying = "playing"
)

// Wakeup arguments passed by the pause overlay
const (
	resumeArg = "resume"
	quitArg   = "quit"
)

const (
	roundTime  = 30 * time.Second
	boxSize    = 12
	boxSpeed   = 120.0 // pixels per second
	targetSize = 32
)

// Colors for rendering
var (
	colorBox    = color.RGBA{100, 200, 100, 255}
	colorTarget = color.RGBA{255, 215, 0, 255}
)

// targetSpots is the cycle of positions the click target jumps through
var targetSpots = [][2]int{{60, 60}, {260, 80}, {160, 180}, {40, 200}, {280, 200}, {160, 60}}

func changeTo(d *devices, name string) {
	next, err := d.ctx.NewScene(name)
	if err != nil {
		log.Printf("[Scene] failed to create %s: %v", name, err)
		return
	}
	d.stack.Change(next)
}

// titleScene shows the Start and Quit buttons
type titleScene struct {
	scene.Container
	d     *devices
	menu  menu
	keyID observer.SubscriptionID
}

func newTitleScene(ctx *game.Context) (scene.Scene, error) {
	d, err := lookupDevices(ctx)
	if err != nil {
		return nil, err
	}
	t := &titleScene{d: d}

	items := []struct {
		label   string
		onClick func()
	}{
		{"Start", func() { changeTo(d, scenePlaying) }},
		{"Quit", func() { d.stack.Quit() }},
	}
	for i, it := range items {
		b, err := newLabeledButton(d, it.label, d.width/2, d.height/2+i*(buttonH+8), it.onClick)
		if err != nil {
			_ = t.Close()
			return nil, err
		}
		t.Add(b)
		t.menu.add(b)
	}

	t.keyID, err = d.keyboard.Subscribe(input.EventKeyDown, t.handleKey)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	return t, nil
}

func (t *titleScene) handleKey(e observer.Event) {
	switch e.(input.KeyEvent).Key {
	case input.KeyUp:
		t.menu.move(-1)
	case input.KeyDown:
		t.menu.move(1)
	}
}

func (t *titleScene) Render() {
	if t.d.screen != nil {
		ebitenutil.DebugPrintAt(t.d.screen.Target(), t.d.ctx.Settings.Display.Title, 10, 10)
	}
	t.Container.Render()
}

func (t *titleScene) Close() error {
	t.d.keyboard.Unsubscribe(t.keyID)
	return t.Container.Close()
}

// playingScene is a timed round: steer the box with the arrows and click
// the target as often as possible before the countdown ends.
type playingScene struct {
	scene.Container
	d      *devices
	timer  *timer.Countdown
	target *labeledButton
	x, y   float64
	spot   int
	score  int
	keyID  observer.SubscriptionID

	// set from the Escape that pushed the overlay until Wakeup
	pausing bool
}

func newPlayingScene(ctx *game.Context) (scene.Scene, error) {
	d, err := lookupDevices(ctx)
	if err != nil {
		return nil, err
	}
	p := &playingScene{
		d:     d,
		timer: timer.New(d.clock),
		x:     float64(d.width-boxSize) / 2,
		y:     float64(d.height-boxSize) / 2,
	}

	if _, err := p.timer.Subscribe(timer.EventComplete, func(observer.Event) {
		log.Printf("[Scene] round over, score %d", p.score)
		changeTo(d, sceneTitle)
	}); err != nil {
		return nil, err
	}

	spot := targetSpots[0]
	p.target, err = newLabeledButton(d, "+1", spot[0], spot[1], p.hit)
	if err != nil {
		return nil, err
	}
	p.Add(p.target)

	p.keyID, err = d.keyboard.Subscribe(input.EventKeyDown, p.handleKey)
	if err != nil {
		_ = p.Close()
		return nil, err
	}

	p.timer.Start(roundTime)
	return p, nil
}

func (p *playingScene) hit() {
	if p.IsFrozen() {
		return
	}
	p.score++
	p.spot = (p.spot + 1) % len(targetSpots)
	spot := targetSpots[p.spot]
	p.target.SetPos(spot[0], spot[1])
}

func (p *playingScene) handleKey(e observer.Event) {
	if p.IsFrozen() || p.pausing {
		return
	}
	if e.(input.KeyEvent).Key == input.KeyEscape {
		p.pausing = true
		p.d.stack.Push(newPauseScene(p.d, p))
	}
}

func (p *playingScene) Update() error {
	if err := p.timer.Update(); err != nil {
		return err
	}

	step := boxSpeed * p.d.ctx.DeltaTime.Seconds()
	kb := p.d.keyboard
	if kb.IsPressed(input.KeyLeft) {
		p.x -= step
	}
	if kb.IsPressed(input.KeyRight) {
		p.x += step
	}
	if kb.IsPressed(input.KeyUp) {
		p.y -= step
	}
	if kb.IsPressed(input.KeyDown) {
		p.y += step
	}
	p.x = clamp(p.x, 0, float64(p.d.width-boxSize))
	p.y = clamp(p.y, 0, float64(p.d.height-boxSize))

	return p.Container.Update()
}

func (p *playingScene) Render() {
	p.Container.Render()
	if p.d.screen == nil {
		return
	}
	dst := p.d.screen.Target()
	vector.FillRect(dst, float32(p.x), float32(p.y), boxSize, boxSize, colorBox, false)
	r := p.target.Rect()
	vector.StrokeRect(dst, float32(r.X-2), float32(r.Y-2), float32(r.Width+4), float32(r.Height+4), 1, colorTarget, false)

	hud := fmt.Sprintf("Time: %.1f  Score: %d", p.timer.Time().Seconds(), p.score)
	ebitenutil.DebugPrintAt(dst, hud, 10, 10)
}

// Wakeup resumes the round when the pause overlay pops.
func (p *playingScene) Wakeup(args ...any) {
	p.pausing = false
	p.Freeze(false)
	p.SetVisible(false)
	p.timer.Resume()
	if len(args) > 0 && args[0] == quitArg {
		changeTo(p.d, sceneTitle)
	}
	p.Container.Wakeup(args...)
}

func (p *playingScene) Close() error {
	p.d.keyboard.Unsubscribe(p.keyID)
	return p.Container.Close()
}

// pauseScene is an overlay over the frozen, still visible round. It takes
// input and freezes the round on its first Update, once it is on the stack;
// until then a request that overrides its Push leaves nothing behind.
type pauseScene struct {
	scene.Container
	d      *devices
	below  *playingScene
	active bool
	menu   menu
	keyID  observer.SubscriptionID
}

func newPauseScene(d *devices, below *playingScene) *pauseScene {
	return &pauseScene{d: d, below: below}
}

func (ps *pauseScene) activate() error {
	items := []struct {
		label string
		arg   string
	}{
		{"Resume", resumeArg},
		{"Title", quitArg},
	}
	for i, it := range items {
		arg := it.arg
		b, err := newLabeledButton(ps.d, it.label, ps.d.width/2, ps.d.height/2+i*(buttonH+8), func() { ps.d.stack.Pop(arg) })
		if err != nil {
			return err
		}
		ps.Add(b)
		ps.menu.add(b)
	}

	var err error
	ps.keyID, err = ps.d.keyboard.Subscribe(input.EventKeyDown, ps.handleKey)
	if err != nil {
		return err
	}

	ps.below.Freeze(true)
	ps.below.SetVisible(true)
	ps.below.timer.Pause()
	ps.active = true
	return nil
}

func (ps *pauseScene) Update() error {
	if !ps.active {
		if err := ps.activate(); err != nil {
			return fmt.Errorf("failed to open pause menu: %w", err)
		}
	}
	return ps.Container.Update()
}

func (ps *pauseScene) handleKey(e observer.Event) {
	switch e.(input.KeyEvent).Key {
	case input.KeyUp:
		ps.menu.move(-1)
	case input.KeyDown:
		ps.menu.move(1)
	case input.KeyEscape:
		ps.d.stack.Pop(resumeArg)
	}
}

func (ps *pauseScene) Render() {
	if ps.d.screen != nil {
		dst := ps.d.screen.Target()
		ebitenio.DrawOverlay(dst, 160)
		ebitenutil.DebugPrintAt(dst, "PAUSED", ps.d.width/2-18, ps.d.height/2-40)
	}
	ps.Container.Render()
}

func (ps *pauseScene) Close() error {
	ps.d.keyboard.Unsubscribe(ps.keyID)
	return ps.Container.Close()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
