package scene

import (
	"errors"
	"log"
)

// Object is a game object owned by a Container.
type Object interface {
	Update() error
	Render()
	Wakeup(args ...any)
	Close() error
	// Destroyed reports whether the container should drop the object.
	Destroyed() bool
}

// ObjectBase carries the destroy flag of an Object.
type ObjectBase struct {
	destroyed bool
}

// Destroy marks the object for removal at the next render pass.
func (o *ObjectBase) Destroy() { o.destroyed = true }

// Destroyed implements Object.
func (o *ObjectBase) Destroyed() bool { return o.destroyed }

// Container is a scene that updates and renders its objects.
// Destroyed objects are skipped by Update and closed and removed during
// Render, so removal never happens while objects are being updated.
type Container struct {
	Base
	objects []Object
}

// Add appends an object. Objects added during Update are first updated
// on the next frame.
func (c *Container) Add(o Object) {
	c.objects = append(c.objects, o)
}

// Len returns the number of objects, destroyed or not.
func (c *Container) Len() int { return len(c.objects) }

// Update updates every live object.
func (c *Container) Update() error {
	n := len(c.objects)
	for i := 0; i < n; i++ {
		o := c.objects[i]
		if o.Destroyed() {
			continue
		}
		if err := o.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Render renders live objects and sweeps destroyed ones.
func (c *Container) Render() {
	kept := c.objects[:0]
	for _, o := range c.objects {
		if o.Destroyed() {
			if err := o.Close(); err != nil {
				log.Printf("[Scene] closing destroyed object: %v", err)
			}
			continue
		}
		o.Render()
		kept = append(kept, o)
	}
	for i := len(kept); i < len(c.objects); i++ {
		c.objects[i] = nil
	}
	c.objects = kept
}

// Wakeup forwards args to every object.
func (c *Container) Wakeup(args ...any) {
	for _, o := range c.objects {
		o.Wakeup(args...)
	}
}

// Close closes every object.
func (c *Container) Close() error {
	var errs []error
	for _, o := range c.objects {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.objects = nil
	return errors.Join(errs...)
}

var _ Scene = (*Container)(nil)
