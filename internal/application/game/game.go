// Package game provides the engine: it owns the scene stack, the input and
// output resources, and runs the fixed per-frame order
//
//	delta update, inputs, scene updates, pacing, scene renders, outputs,
//	deferred stack mutation
//
// until the stack is empty.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/application/scene"
	"github.com/younwookim/impala/internal/application/state"
	"github.com/younwookim/impala/internal/infrastructure/config"
	"github.com/younwookim/impala/internal/infrastructure/errlog"
)

// ErrInvalidStackMutation is returned when a pending stack mutation has an
// unknown kind.
var ErrInvalidStackMutation = errors.New("invalid stack mutation")

type mutation int

const (
	mutationNone mutation = iota
	mutationChange
	mutationPush
	mutationPop
	mutationQuit
)

func (m mutation) String() string {
	switch m {
	case mutationNone:
		return "none"
	case mutationChange:
		return "change"
	case mutationPush:
		return "push"
	case mutationPop:
		return "pop"
	case mutationQuit:
		return "quit"
	default:
		return fmt.Sprintf("mutation(%d)", int(m))
	}
}

// Option customizes an Engine.
type Option func(*options)

type options struct {
	clock  clock.Clock
	pacing bool
}

// WithClock sets the time source shared by the engine, timers and widgets.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithoutPacing disables frame sleeping. Use it when the window backend
// already paces frames.
func WithoutPacing() Option {
	return func(o *options) { o.pacing = false }
}

// Engine drives a stack of scenes.
type Engine struct {
	ctx     *Context
	scenes  []scene.Scene
	inputs  []InputResource
	outputs []OutputResource
	delta   *clock.DeltaTime
	state   state.RunState

	pending      mutation
	pendingScene scene.Scene
	pendingArgs  []any
}

var _ scene.Stack = (*Engine)(nil)

// New validates settings, creates the configured input and output resources
// (in listed order, so later ones can look up earlier ones) and pushes the
// first scene.
func New(settings *config.Settings, reg *Registry, opts ...Option) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = NewRegistry()
	}

	o := options{clock: clock.Real{}, pacing: true}
	for _, opt := range opts {
		opt(&o)
	}

	framerate := settings.Display.Framerate
	if !o.pacing {
		framerate = 0
	}

	e := &Engine{
		delta: clock.NewDeltaTime(o.clock, framerate),
	}
	e.ctx = &Context{
		Settings:  settings,
		Stack:     e,
		Clock:     o.clock,
		DeltaTime: e.delta,
		registry:  reg,
		inputs:    make(map[string]InputResource),
		outputs:   make(map[string]OutputResource),
	}

	for _, name := range settings.InputManagers {
		f, ok := reg.inputs[name]
		if !ok {
			e.closeResources()
			return nil, fmt.Errorf("%w: unknown input manager %q", config.ErrInvalidConfiguration, name)
		}
		in, err := f(e.ctx)
		if err != nil {
			e.closeResources()
			return nil, fmt.Errorf("failed to create input %q: %w", name, err)
		}
		e.inputs = append(e.inputs, in)
		e.ctx.inputs[name] = in
	}

	for _, name := range settings.OutputManagers {
		f, ok := reg.outputs[name]
		if !ok {
			e.closeResources()
			return nil, fmt.Errorf("%w: unknown output manager %q", config.ErrInvalidConfiguration, name)
		}
		out, err := f(e.ctx)
		if err != nil {
			e.closeResources()
			return nil, fmt.Errorf("failed to create output %q: %w", name, err)
		}
		e.outputs = append(e.outputs, out)
		e.ctx.outputs[name] = out
	}

	if _, ok := reg.scenes[settings.FirstScene]; !ok {
		e.closeResources()
		return nil, fmt.Errorf("%w: unknown first scene %q", config.ErrInvalidConfiguration, settings.FirstScene)
	}
	first, err := e.ctx.NewScene(settings.FirstScene)
	if err != nil {
		e.closeResources()
		return nil, fmt.Errorf("failed to create first scene %q: %w", settings.FirstScene, err)
	}
	if first == nil {
		e.closeResources()
		return nil, fmt.Errorf("%w: first scene %q is nil", config.ErrInvalidConfiguration, settings.FirstScene)
	}
	e.scenes = append(e.scenes, first)

	log.Printf("[Engine] %s ready: %d inputs, %d outputs, first scene %q",
		settings.GameID, len(e.inputs), len(e.outputs), settings.FirstScene)
	return e, nil
}

// Context returns the shared instances handed to scenes and resources.
func (e *Engine) Context() *Context { return e.ctx }

// State returns the lifecycle state.
func (e *Engine) State() state.RunState { return e.state }

// Depth returns the number of scenes on the stack.
func (e *Engine) Depth() int { return len(e.scenes) }

// Top returns the top scene, or nil when the stack is empty.
func (e *Engine) Top() scene.Scene {
	if len(e.scenes) == 0 {
		return nil
	}
	return e.scenes[len(e.scenes)-1]
}

// Change requests that the top scene be closed and replaced by s at the end
// of the frame. A nil s is ignored.
func (e *Engine) Change(s scene.Scene) {
	if s == nil {
		return
	}
	e.request(mutationChange, s, nil)
}

// Push requests that s be put on top of the stack at the end of the frame.
// A nil s is ignored.
func (e *Engine) Push(s scene.Scene) {
	if s == nil {
		return
	}
	e.request(mutationPush, s, nil)
}

// Pop requests that the top scene be closed at the end of the frame; the
// scene below is then woken up with args.
func (e *Engine) Pop(args ...any) {
	e.request(mutationPop, nil, args)
}

// Quit requests that every scene be closed at the end of the frame.
func (e *Engine) Quit() {
	e.request(mutationQuit, nil, nil)
}

// request records the pending mutation. Only the last request of a frame
// is applied; a scene carried by an overridden Change or Push never reaches
// the stack, so it is closed here.
func (e *Engine) request(kind mutation, s scene.Scene, args []any) {
	if e.pending != mutationNone && e.pending != kind {
		log.Printf("[Engine] %s request overrides pending %s", kind, e.pending)
	}
	e.discardPending(s)
	e.pending = kind
	e.pendingScene = s
	e.pendingArgs = args
}

// Frame runs one full frame. It does nothing once the stack is empty.
func (e *Engine) Frame() error {
	if len(e.scenes) == 0 {
		return nil
	}
	if e.state == state.StateIdle {
		e.state = state.StateRunning
	}

	e.delta.Update()

	for _, in := range e.inputs {
		if err := in.Update(); err != nil {
			return fmt.Errorf("input update: %w", err)
		}
	}

	for _, s := range e.scenes {
		if s.IsFrozen() {
			continue
		}
		if err := s.Update(); err != nil {
			return fmt.Errorf("scene update: %w", err)
		}
	}

	e.delta.Accumulate()
	e.delta.Sync()

	for _, s := range e.scenes {
		if !s.IsFrozen() || s.IsVisible() {
			s.Render()
		}
	}

	for _, out := range e.outputs {
		if err := out.Update(); err != nil {
			return fmt.Errorf("output update: %w", err)
		}
	}

	return e.applyMutation()
}

// discardPending closes the scene of the pending request unless it is keep.
func (e *Engine) discardPending(keep scene.Scene) {
	old := e.pendingScene
	e.pendingScene = nil
	if old == nil || old == keep {
		return
	}
	if err := old.Close(); err != nil {
		log.Printf("[Engine] closing discarded scene: %v", err)
	}
}

func (e *Engine) applyMutation() error {
	kind, next, args := e.pending, e.pendingScene, e.pendingArgs
	e.pending, e.pendingScene, e.pendingArgs = mutationNone, nil, nil

	var err error
	switch kind {
	case mutationNone:
		return nil
	case mutationChange:
		err = e.closeTop()
		e.scenes = append(e.scenes, next)
	case mutationPush:
		e.scenes = append(e.scenes, next)
	case mutationPop:
		err = e.closeTop()
		if top := e.Top(); top != nil {
			top.Wakeup(args...)
		}
	case mutationQuit:
		err = e.closeScenes()
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStackMutation, kind)
	}

	if len(e.scenes) == 0 {
		e.state = state.StateTerminating
		log.Printf("[Engine] scene stack empty, terminating")
	}
	return err
}

func (e *Engine) closeTop() error {
	top := e.Top()
	if top == nil {
		return nil
	}
	e.scenes = e.scenes[:len(e.scenes)-1]
	if err := top.Close(); err != nil {
		return fmt.Errorf("scene close: %w", err)
	}
	return nil
}

// closeScenes closes every scene from top to bottom.
func (e *Engine) closeScenes() error {
	var errs []error
	for len(e.scenes) > 0 {
		if err := e.closeTop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) closeResources() error {
	var errs []error
	for _, in := range e.inputs {
		if err := in.Close(); err != nil {
			errs = append(errs, fmt.Errorf("input close: %w", err))
		}
	}
	for _, out := range e.outputs {
		if err := out.Close(); err != nil {
			errs = append(errs, fmt.Errorf("output close: %w", err))
		}
	}
	e.inputs, e.outputs = nil, nil
	return errors.Join(errs...)
}

// Step runs one frame for a loop driven from outside (the window backend).
// done reports that the stack is empty and resources have been closed.
// A returned error is fatal: everything has been closed and the error log
// written.
func (e *Engine) Step() (done bool, err error) {
	if e.state == state.StateClosed {
		return true, nil
	}
	if err := e.safeFrame(); err != nil {
		return true, err
	}
	if len(e.scenes) == 0 {
		return true, e.Close()
	}
	return false, nil
}

// Run loops frames until the stack is empty. Cancelling ctx closes every
// scene at the next frame boundary, like Quit. A scene, input or output
// error, or a panic, is fatal: every scene and resource is closed
// best-effort, the error is appended to the error log under the root path,
// and the error is returned.
func (e *Engine) Run(ctx context.Context) error {
	log.Printf("[Engine] run started")
	for len(e.scenes) > 0 {
		if ctx.Err() != nil {
			log.Printf("[Engine] context done: %v", ctx.Err())
			break
		}
		if err := e.safeFrame(); err != nil {
			return err
		}
	}
	return e.Close()
}

// safeFrame runs Frame and turns errors and panics into a fatal shutdown.
func (e *Engine) safeFrame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			e.fail(err, debug.Stack())
		}
	}()
	if err = e.Frame(); err != nil {
		e.fail(err, nil)
	}
	return err
}

func (e *Engine) fail(err error, stack []byte) {
	log.Printf("[Engine] fatal: %v", err)
	e.state = state.StateTerminating

	e.discardPending(nil)
	e.pending, e.pendingArgs = mutationNone, nil
	if closeErr := e.closeScenes(); closeErr != nil {
		log.Printf("[Engine] error closing scenes: %v", closeErr)
	}
	if closeErr := e.closeResources(); closeErr != nil {
		log.Printf("[Engine] error closing resources: %v", closeErr)
	}

	path := errlog.Path(e.ctx.Settings.RootPath)
	if logErr := errlog.Write(path, err, stack); logErr != nil {
		log.Printf("[Engine] failed to write error log %s: %v", path, logErr)
	}
	e.state = state.StateClosed
}

// Close closes any remaining scenes and every resource. It is safe to call
// more than once.
func (e *Engine) Close() error {
	if e.state == state.StateClosed {
		return nil
	}
	e.discardPending(nil)
	e.pending, e.pendingArgs = mutationNone, nil
	err := errors.Join(e.closeScenes(), e.closeResources())
	e.state = state.StateClosed
	log.Printf("[Engine] closed after %d frames", e.delta.Frames())
	return err
}
