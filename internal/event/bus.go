package event

import (
	"log/slog"
	"sync"
)

type HandlerFunc func(raw any)

// NamedHandlerFunc receives the event name alongside the payload.
type NamedHandlerFunc func(eventName string, raw any)

type subscription struct {
	id      uint64
	handler HandlerFunc
}

// Bus delivers events to subscribers synchronously, in subscription order,
// on the publisher's goroutine. A panicking handler is logged and skipped.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscription),
	}
}

// Subscribe registers handler for eventName. The returned func removes it and
// is safe to call more than once.
func (b *Bus) Subscribe(eventName string, handler HandlerFunc) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers[eventName] = append(b.handlers[eventName], subscription{id: id, handler: handler})
	return func() { b.unsubscribe(eventName, id) }
}

// SubscribeAll registers handler for every controller event in All.
func (b *Bus) SubscribeAll(handler NamedHandlerFunc) func() {
	cancels := make([]func(), 0, len(All))
	for _, name := range All {
		name := name
		cancels = append(cancels, b.Subscribe(name, func(evt any) { handler(name, evt) }))
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}

func (b *Bus) unsubscribe(eventName string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.handlers[eventName]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		next := make([]subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, eventName)
		} else {
			b.handlers[eventName] = next
		}
		return
	}
}

// Subscribers reports how many handlers listen for eventName.
func (b *Bus) Subscribers(eventName string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventName])
}

func (b *Bus) Publish(eventName string, evt any) {
	if b == nil {
		return
	}
	b.mu.RLock()
	subs := b.handlers[eventName]
	b.mu.RUnlock()

	// unsubscribe swaps in a fresh slice, so subs stays stable while we iterate.
	for _, s := range subs {
		dispatch(eventName, s.handler, evt)
	}
}

func dispatch(eventName string, h HandlerFunc, evt any) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Event handler panicked", "event", eventName, "panic", r)
		}
	}()
	h(evt)
}
