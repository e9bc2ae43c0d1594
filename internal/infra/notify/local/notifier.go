package local

import (
	"context"
	"sync"
)

const listenerBuffer = 16

// Notifier in-process fan-out of collection change notifications.
// Suitable for a single instance and for tests.
type Notifier struct {
	mu        sync.Mutex
	listeners map[chan string]struct{}
}

// New creates an empty notifier
func New() *Notifier {
	return &Notifier{listeners: make(map[chan string]struct{})}
}

// Publish delivers collection to every listener. A listener whose buffer is full
// has its oldest entry replaced by a reload-everything marker.
func (n *Notifier) Publish(_ context.Context, collection string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.listeners {
		select {
		case ch <- collection:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- "":
			default:
			}
		}
	}
	return nil
}

// Listen registers a listener until ctx is cancelled
func (n *Notifier) Listen(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, listenerBuffer)

	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.listeners, ch)
		close(ch)
		n.mu.Unlock()
	}()

	return ch, nil
}
