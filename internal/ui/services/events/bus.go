package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publisher's goroutine, in subscription order, so a listener observes
// state exactly as it was when the event fired.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := b.listeners[TypeOf(event)]
	b.mu.RUnlock()

	// Handlers may subscribe or publish again; the lock is not held here
	for _, handler := range handlers {
		handler(event)
	}
}

// Reset drops every listener. Used on teardown.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = make(map[string][]func(interface{}))
}

// TypeOf returns the key events of this dynamic type are published under
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
