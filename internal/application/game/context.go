package game

import (
	"fmt"

	"github.com/younwookim/impala/internal/application/clock"
	"github.com/younwookim/impala/internal/application/scene"
	"github.com/younwookim/impala/internal/infrastructure/config"
)

// InputResource is a device polled once per frame, before scenes update.
type InputResource interface {
	// Update drains queued raw events and dispatches them.
	Update() error
	// Close releases device resources.
	Close() error
}

// OutputResource is flushed once per frame, after scenes render.
type OutputResource interface {
	// Update flushes buffered output.
	Update() error
	// Close releases resources.
	Close() error
}

// Factories build the named parts listed in the settings.
type (
	SceneFactory  func(ctx *Context) (scene.Scene, error)
	InputFactory  func(ctx *Context) (InputResource, error)
	OutputFactory func(ctx *Context) (OutputResource, error)
)

// Registry maps the names used in settings to factories.
type Registry struct {
	scenes  map[string]SceneFactory
	inputs  map[string]InputFactory
	outputs map[string]OutputFactory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scenes:  make(map[string]SceneFactory),
		inputs:  make(map[string]InputFactory),
		outputs: make(map[string]OutputFactory),
	}
}

// RegisterScene registers a scene factory under name.
func (r *Registry) RegisterScene(name string, f SceneFactory) *Registry {
	r.scenes[name] = f
	return r
}

// RegisterInput registers an input resource factory under name.
func (r *Registry) RegisterInput(name string, f InputFactory) *Registry {
	r.inputs[name] = f
	return r
}

// RegisterOutput registers an output resource factory under name.
func (r *Registry) RegisterOutput(name string, f OutputFactory) *Registry {
	r.outputs[name] = f
	return r
}

// Context is the set of per-run shared instances handed to every factory
// and scene: settings, time, the scene stack and the devices.
type Context struct {
	Settings  *config.Settings
	Stack     scene.Stack
	Clock     clock.Clock
	DeltaTime *clock.DeltaTime

	registry *Registry
	inputs   map[string]InputResource
	outputs  map[string]OutputResource
}

// Input returns the input resource created for name.
func (c *Context) Input(name string) (InputResource, bool) {
	r, ok := c.inputs[name]
	return r, ok
}

// Output returns the output resource created for name.
func (c *Context) Output(name string) (OutputResource, bool) {
	r, ok := c.outputs[name]
	return r, ok
}

// NewScene builds the scene registered under name.
func (c *Context) NewScene(name string) (scene.Scene, error) {
	f, ok := c.registry.scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return f(c)
}

// InputAs looks up an input resource and asserts its concrete type.
func InputAs[T any](c *Context, name string) (T, error) {
	var zero T
	r, ok := c.Input(name)
	if !ok {
		return zero, fmt.Errorf("input %q not configured", name)
	}
	v, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf("input %q is %T, not %T", name, r, zero)
	}
	return v, nil
}

// OutputAs looks up an output resource and asserts its concrete type.
func OutputAs[T any](c *Context, name string) (T, error) {
	var zero T
	r, ok := c.Output(name)
	if !ok {
		return zero, fmt.Errorf("output %q not configured", name)
	}
	v, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf("output %q is %T, not %T", name, r, zero)
	}
	return v, nil
}
