// Package observer is a small typed publish/subscribe list.
package observer

import "sync"

type subscription[K comparable, E any] struct {
	id      uint64
	kind    K
	all     bool
	handler func(E)
}

// Bus dispatches events of type E to handlers registered per kind K or for
// every kind. Handlers run on the emitting goroutine, in subscription order,
// and may subscribe or unsubscribe while being called.
type Bus[K comparable, E any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription[K, E]
}

// New returns an empty bus.
func New[K comparable, E any]() *Bus[K, E] {
	return &Bus[K, E]{}
}

// Subscribe registers handler for kind. The returned func removes it and is safe to call twice.
func (b *Bus[K, E]) Subscribe(kind K, handler func(E)) func() {
	return b.add(subscription[K, E]{kind: kind, handler: handler})
}

// SubscribeAll registers handler for every kind.
func (b *Bus[K, E]) SubscribeAll(handler func(E)) func() {
	return b.add(subscription[K, E]{all: true, handler: handler})
}

// Emit calls the handlers subscribed to kind or to every kind.
func (b *Bus[K, E]) Emit(kind K, event E) {
	b.mu.RLock()
	handlers := make([]func(E), 0, len(b.subs))
	for _, s := range b.subs {
		if s.all || s.kind == kind {
			handlers = append(handlers, s.handler)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// Len reports the number of live subscriptions.
func (b *Bus[K, E]) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Clear drops every subscription.
func (b *Bus[K, E]) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = nil
}

func (b *Bus[K, E]) add(s subscription[K, E]) func() {
	b.mu.Lock()
	b.nextID++
	s.id = b.nextID
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(s.id) })
	}
}

func (b *Bus[K, E]) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)

			return
		}
	}
}
