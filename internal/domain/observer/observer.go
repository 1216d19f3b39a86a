// Package observer provides the publish/subscribe registry every input
// device, timer and widget is built on.
//
// Each publisher owns an Observations value, declares the event types it
// emits with RegisterEventTypes, and broadcasts events synchronously to the
// handlers subscribed for that type, in subscription order.
package observer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEventType is returned when subscribing to or broadcasting
	// a type the publisher never declared.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrDuplicateEventType is returned when a publisher declares the same
	// event type twice.
	ErrDuplicateEventType = errors.New("duplicate event type")
)

// EventType names a category of occurrence.
type EventType string

// Event is a value broadcast through Observations.
type Event interface {
	EventType() EventType
}

// Signal is an event with no payload.
type Signal EventType

// EventType implements Event.
func (s Signal) EventType() EventType { return EventType(s) }

// Handler receives broadcast events.
type Handler func(e Event)

// SubscriptionID identifies a single handler binding.
type SubscriptionID uint64

// Subject is the subscription half of a publisher.
type Subject interface {
	Subscribe(t EventType, h Handler) (SubscriptionID, error)
	SubscribeObserver(t EventType, observer any, h Handler) (SubscriptionID, error)
	Unsubscribe(id SubscriptionID)
	UnsubscribeType(t EventType, id SubscriptionID)
	UnsubscribeObserver(observer any)
	UnsubscribeObserverType(t EventType, observer any)
}

type binding struct {
	id       SubscriptionID
	observer any // nil for global handlers
	handler  Handler
	removed  bool
}

// Observations is the handler registry of one publisher.
// It is not safe for concurrent use; publishers touch it only from the
// frame goroutine.
type Observations struct {
	types  map[EventType][]*binding
	nextID SubscriptionID
}

var _ Subject = (*Observations)(nil)

// New creates an Observations with the given event types declared.
// It panics on duplicates, which are programming errors.
func New(types ...EventType) *Observations {
	o := &Observations{
		types:  make(map[EventType][]*binding),
		nextID: 1,
	}
	if err := o.RegisterEventTypes(types...); err != nil {
		panic(err)
	}
	return o
}

// RegisterEventTypes declares event types. If any id is already declared
// (or repeated in ids) nothing is registered.
func (o *Observations) RegisterEventTypes(ids ...EventType) error {
	seen := make(map[EventType]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := o.types[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEventType, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateEventType, id)
		}
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		o.types[id] = nil
	}
	return nil
}

// HasEventType reports whether t is declared.
func (o *Observations) HasEventType(t EventType) bool {
	_, ok := o.types[t]
	return ok
}

// Subscribe binds a global handler to t.
func (o *Observations) Subscribe(t EventType, h Handler) (SubscriptionID, error) {
	return o.SubscribeObserver(t, nil, h)
}

// SubscribeObserver binds h to t on behalf of observer, so that all of the
// observer's bindings can later be removed at once. observer must be
// comparable (typically a pointer).
func (o *Observations) SubscribeObserver(t EventType, observer any, h Handler) (SubscriptionID, error) {
	list, ok := o.types[t]
	if !ok {
		return 0, fmt.Errorf("subscribe %q: %w", t, ErrUnknownEventType)
	}
	id := o.nextID
	o.nextID++
	o.types[t] = append(list, &binding{id: id, observer: observer, handler: h})
	return id, nil
}

// Unsubscribe removes the binding with the given id, whatever its type.
func (o *Observations) Unsubscribe(id SubscriptionID) {
	for t := range o.types {
		o.remove(t, func(b *binding) bool { return b.id == id })
	}
}

// UnsubscribeType removes the binding with the given id only if it is bound
// to t.
func (o *Observations) UnsubscribeType(t EventType, id SubscriptionID) {
	o.remove(t, func(b *binding) bool { return b.id == id })
}

// UnsubscribeObserver removes every binding owned by observer.
func (o *Observations) UnsubscribeObserver(observer any) {
	if observer == nil {
		return
	}
	for t := range o.types {
		o.remove(t, func(b *binding) bool { return b.observer == observer })
	}
}

// UnsubscribeObserverType removes observer's bindings for t.
func (o *Observations) UnsubscribeObserverType(t EventType, observer any) {
	if observer == nil {
		return
	}
	o.remove(t, func(b *binding) bool { return b.observer == observer })
}

// remove drops matching bindings. The backing slice is rebuilt rather than
// edited in place so a broadcast iterating an older snapshot is unaffected;
// the removed flag makes that broadcast skip the binding.
func (o *Observations) remove(t EventType, match func(*binding) bool) {
	list, ok := o.types[t]
	if !ok || len(list) == 0 {
		return
	}
	kept := make([]*binding, 0, len(list))
	for _, b := range list {
		if match(b) {
			b.removed = true
			continue
		}
		kept = append(kept, b)
	}
	o.types[t] = kept
}

// Broadcast invokes every handler currently bound to e's type.
func (o *Observations) Broadcast(e Event) error {
	t := e.EventType()
	list, ok := o.types[t]
	if !ok {
		return fmt.Errorf("broadcast %q: %w", t, ErrUnknownEventType)
	}
	for _, b := range list {
		if b.removed {
			continue
		}
		b.handler(e)
	}
	return nil
}

// Notify broadcasts a payload-less Signal of type t.
func (o *Observations) Notify(t EventType) error {
	return o.Broadcast(Signal(t))
}

// Count returns the number of live bindings for t.
func (o *Observations) Count(t EventType) int {
	return len(o.types[t])
}
