// Package notifier fans a refresh signal out to the dashboards' SSE
// connections. The signal carries no data: a subscriber receiving a ping
// recomputes its view from the record source.
package notifier

import "sync"

// Notifier broadcasts refresh pings to all subscribed listeners.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[chan struct{}]struct{}
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{listeners: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener. Callers must Unsubscribe when done or
// the listener set grows without bound.
func (n *Notifier) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (n *Notifier) Unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	delete(n.listeners, ch)
	n.mu.Unlock()
	close(ch)
}

// Broadcast pings every listener without blocking. A listener whose
// buffer is full already has a pending refresh, so the ping is dropped.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for ch := range n.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
