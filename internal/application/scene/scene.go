// Package scene defines the Scene contract the engine drives.
//
// Each game screen (title, menu, playing, pause overlay, etc.) implements
// Scene. The engine keeps scenes on a stack: every non-frozen scene is
// updated each frame, every non-frozen or visible scene is rendered, and the
// top of the stack is the one that reacts to input.
package scene

// Scene represents a game screen on the engine's stack.
type Scene interface {
	// Update advances the scene by one frame.
	// Returns an error to terminate the game.
	Update() error

	// Render draws the scene into the output resources it holds.
	Render()

	// Wakeup is called when the scene above this one is popped.
	// args are the values passed to Pop.
	Wakeup(args ...any)

	// Close is called once when the scene leaves the stack for good.
	// Use this for cleanup or resource release.
	Close() error

	// IsFrozen reports whether the scene skips updates.
	IsFrozen() bool

	// IsVisible reports whether a frozen scene is still rendered.
	IsVisible() bool
}

// Stack is the part of the engine scenes use to request stack changes.
// Requests are deferred to the end of the frame and only the last request
// of a frame takes effect.
type Stack interface {
	// Change replaces the top scene with s.
	Change(s Scene)
	// Push puts s on top of the stack.
	Push(s Scene)
	// Pop removes the top scene and wakes the one below with args.
	Pop(args ...any)
	// Quit closes every scene and ends the run.
	Quit()
}

// Base carries the frozen and visible flags. Embed it to satisfy those
// parts of Scene.
type Base struct {
	frozen  bool
	visible bool
}

// IsFrozen implements Scene.
func (b *Base) IsFrozen() bool { return b.frozen }

// IsVisible implements Scene.
func (b *Base) IsVisible() bool { return b.visible }

// Freeze stops (or restarts) updates for the scene.
func (b *Base) Freeze(frozen bool) { b.frozen = frozen }

// SetVisible keeps a frozen scene rendered, e.g. under a pause overlay.
func (b *Base) SetVisible(visible bool) { b.visible = visible }
