// ABOUTME: Typed publish/subscribe bus for list interaction events
// ABOUTME: Handlers run synchronously in subscription order; safe for concurrent use

package eventbus

import (
	"slices"
	"sync"
)

// Handler is a callback for events of type T.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      uint64
	handler Handler[T]
	filter  func(T) bool
}

// Bus delivers events of type T to registered handlers.
type Bus[T any] struct {
	mu     sync.RWMutex
	subs   []subscription[T]
	nextID uint64
}

// New creates an empty bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers handler for every event and returns an unsubscribe
// function. Unsubscribing twice is harmless.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	return b.SubscribeIf(nil, handler)
}

// SubscribeIf registers handler for events accepted by filter. A nil
// filter accepts everything.
func (b *Bus[T]) SubscribeIf(filter func(T) bool, handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[T]{id: id, handler: handler, filter: filter})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.subs = slices.DeleteFunc(b.subs, func(s subscription[T]) bool { return s.id == id })
	}
}

// Publish delivers event to matching handlers in subscription order.
// The lock is not held while handlers run, so they may subscribe,
// unsubscribe or publish.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	snapshot := slices.Clone(b.subs)
	b.mu.RUnlock()

	for _, s := range snapshot {
		if s.filter != nil && !s.filter(event) {
			continue
		}
		s.handler(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Clear removes every handler.
func (b *Bus[T]) Clear() {
	b.mu.Lock()
	b.subs = nil
	b.mu.Unlock()
}
