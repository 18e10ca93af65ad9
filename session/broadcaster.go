// Package session carries the process-wide session-expired signal from the
// auth guard to whoever renders the logout.
package session

import "sync"

// ExpiryBroadcaster fans a payload-less signal out to every subscriber.
// Delivery is fire-and-forget: a subscriber that is not draining its channel
// misses the signal rather than blocking the broadcast, and no delivery
// order is observable.
type ExpiryBroadcaster struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]chan struct{}
}

func NewExpiryBroadcaster() *ExpiryBroadcaster {
	return &ExpiryBroadcaster{listeners: map[int]chan struct{}{}}
}

// Subscribe registers a listener and returns its id together with the
// signal channel. The channel has a single-slot buffer so a listener that
// subscribes and later drains still observes one pending signal.
func (b *ExpiryBroadcaster) Subscribe() (int, <-chan struct{}) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners == nil {
		b.listeners = map[int]chan struct{}{}
	}
	b.nextID++
	id := b.nextID
	ch := make(chan struct{}, 1)
	b.listeners[id] = ch
	return id, ch
}

func (b *ExpiryBroadcaster) Unsubscribe(id int) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.listeners, id)
}

// Broadcast signals every current subscriber without waiting on any of them.
func (b *ExpiryBroadcaster) Broadcast() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// ListenerCount is a test hook.
func (b *ExpiryBroadcaster) ListenerCount() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
