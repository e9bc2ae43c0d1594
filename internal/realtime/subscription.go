package realtime

import "sync"

// Subscription is a scoped handle on one collection's snapshots.
// Only the newest undelivered snapshot is kept for a slow reader.
// Close must be called on every exit path; it is safe to call more than once.
type Subscription struct {
	hub        *Hub
	collection string
	ch         chan *Snapshot
	once       sync.Once
}

// C returns the snapshot channel. It is closed by Close or when the hub shuts down.
func (s *Subscription) C() <-chan *Snapshot {
	return s.ch
}

// Collection returns the subscribed collection name
func (s *Subscription) Collection() string {
	return s.collection
}

// Close releases the subscription
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
}

// deliver replaces any pending snapshot with snap. Caller holds hub.mu.
func (s *Subscription) deliver(snap *Snapshot) {
	select {
	case s.ch <- snap:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- snap:
	default:
	}
}
