package ebitenio

import (
	"context"
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/impala/internal/application/game"
	"github.com/younwookim/impala/internal/infrastructure/config"
)

// Runner implements ebiten.Game around an engine. Each ebiten tick runs one
// engine frame; the window draws the frame the Screen last published.
type Runner struct {
	ctx    context.Context
	engine *game.Engine
	screen *Screen
	width  int
	height int
}

// NewRunner creates a runner. screen may be nil when no screen output is
// configured. Cancelling ctx ends the run at the next tick.
func NewRunner(ctx context.Context, e *game.Engine, screen *Screen, width, height int) *Runner {
	return &Runner{
		ctx:    ctx,
		engine: e,
		screen: screen,
		width:  width,
		height: height,
	}
}

// Update runs one engine frame. It returns ebiten.Termination once the
// scene stack is empty or the context is done.
func (r *Runner) Update() error {
	if err := r.ctx.Err(); err != nil {
		log.Printf("[Engine] context done: %v", err)
		if closeErr := r.engine.Close(); closeErr != nil {
			return closeErr
		}
		return ebiten.Termination
	}
	done, err := r.engine.Step()
	if err != nil {
		return err
	}
	if done {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the last published frame.
func (r *Runner) Draw(screen *ebiten.Image) {
	if r.screen != nil {
		r.screen.Present(screen)
	}
}

// Layout returns the logical screen size.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

// Run opens the window described by display and blocks until the engine
// finishes. The engine must have been created WithoutPacing, since ebiten
// paces ticks at display.Framerate.
func Run(ctx context.Context, e *game.Engine, screen *Screen, display config.DisplayConfig) error {
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	log.Printf("[Engine] opening %dx%d window at %d TPS", display.ScreenWidth, display.ScreenHeight, display.Framerate)
	r := NewRunner(ctx, e, screen, display.ScreenWidth, display.ScreenHeight)
	err := ebiten.RunGame(r)
	return errors.Join(err, e.Close())
}
