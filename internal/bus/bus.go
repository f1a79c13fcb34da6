// Package bus provides a small in-process publish/subscribe fan-out
// used to decouple the SPSA dispatcher from whatever consumes its
// checkpoint events (the log writer, an optional live broadcaster).
package bus

import (
	"sync"

	"spsatune/internal/model"
)

// Bus handles internal pub/sub of checkpoint events.
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan model.CheckpointEvent
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make([]chan model.CheckpointEvent, 0),
	}
}

// Subscribe returns a read-only channel of checkpoint events.
func (b *Bus) Subscribe(bufferSize int) <-chan model.CheckpointEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan model.CheckpointEvent, bufferSize)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Publish broadcasts the event to all subscribers.
// Non-blocking publish: if a subscriber is slow/full, we drop the message.
func (b *Bus) Publish(e model.CheckpointEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- e:
		default:
			// Slow consumer, dropping to keep the dispatcher unblocked
		}
	}
}
