// Package event provides the notification mechanism between the
// renderer and its host. Delivery is synchronous and in subscription
// order; the renderer's only deferred-work point is the frame pump.
package event

import "sync"

// Topic names a notification kind, dot-notation by convention
// (e.g. "render.refresh").
type Topic string

// Publisher is the write side of the bus. Components that only emit
// notifications depend on this rather than the full Bus.
type Publisher interface {
	Publish(topic Topic, payload any)
}

// Handler receives published payloads.
type Handler func(payload any)

// Subscription identifies a registered handler for unsubscription.
type Subscription struct {
	topic Topic
	id    uint64
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus is a synchronous topic-based notification bus.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]registration
	nextID uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]registration)}
}

// Subscribe registers a handler for the given topic.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.subs[topic] = append(b.subs[topic], registration{id: b.nextID, handler: h})
	return Subscription{topic: topic, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.subs[sub.topic]
	for i, r := range regs {
		if r.id == sub.id {
			b.subs[sub.topic] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every handler subscribed to the
// topic, synchronously, in subscription order.
func (b *Bus) Publish(topic Topic, payload any) {
	b.mu.RLock()
	regs := make([]registration, len(b.subs[topic]))
	copy(regs, b.subs[topic])
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(payload)
	}
}
