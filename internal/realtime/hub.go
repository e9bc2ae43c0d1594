package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/metrics"
)

const relistenDelay = 2 * time.Second

// Hub keeps the latest snapshot of every collection and fans new snapshots out to subscribers.
// Each change notification triggers a full reload of the affected collection.
type Hub struct {
	loader   Loader
	notifier Notifier
	metrics  *metrics.Metrics
	logger   Logger
	now      func() time.Time

	// reloadMu serialises load+publish so versions follow load order
	reloadMu sync.Mutex

	mu       sync.Mutex
	subs     map[string]map[*Subscription]struct{}
	latest   map[string]*Snapshot
	versions map[string]uint64
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewHub creates a hub. metrics may be nil.
func NewHub(loader Loader, notifier Notifier, m *metrics.Metrics, logger Logger) *Hub {
	h := &Hub{
		loader:   loader,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		subs:     make(map[string]map[*Subscription]struct{}),
		latest:   make(map[string]*Snapshot),
		versions: make(map[string]uint64),
	}
	for _, c := range domain.Collections {
		h.subs[c] = make(map[*Subscription]struct{})
	}
	return h
}

// Start begins listening for changes and loads every collection once.
// Listening starts before the initial load so no change between the two is missed.
func (h *Hub) Start(ctx context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrHubClosed
	}
	if h.done != nil {
		h.mu.Unlock()
		return nil
	}
	runCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.done = make(chan struct{})
	h.mu.Unlock()

	changes, err := h.notifier.Listen(runCtx)
	if err != nil {
		cancel()
		h.mu.Lock()
		h.cancel, h.done = nil, nil
		h.mu.Unlock()
		return fmt.Errorf("realtime: listen for changes: %w", err)
	}

	h.reloadAll(runCtx)

	go h.run(runCtx, changes)
	return nil
}

func (h *Hub) run(ctx context.Context, changes <-chan string) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return
		case collection, ok := <-changes:
			if ok {
				h.handleChange(ctx, collection)
				continue
			}
			if ctx.Err() != nil {
				return
			}

			h.logger.Warn("realtime: change listener stopped, reconnecting")
			changes = h.relisten(ctx)
			if changes == nil {
				return
			}
			// Изменения за время переподключения неизвестны
			h.reloadAll(ctx)
		}
	}
}

func (h *Hub) relisten(ctx context.Context) <-chan string {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(relistenDelay):
		}

		changes, err := h.notifier.Listen(ctx)
		if err == nil {
			return changes
		}
		h.logger.Error("realtime: relisten failed: %v", err)
	}
}

func (h *Hub) handleChange(ctx context.Context, collection string) {
	if collection == "" {
		h.reloadAll(ctx)
		return
	}
	if !domain.IsKnownCollection(collection) {
		h.logger.Warn("realtime: ignoring change for unknown collection=%q", collection)
		return
	}
	if err := h.Refresh(ctx, collection); err != nil {
		h.logger.Error("realtime: %v", err)
	}
}

func (h *Hub) reloadAll(ctx context.Context) {
	for _, c := range domain.Collections {
		if err := h.Refresh(ctx, c); err != nil {
			h.logger.Error("realtime: %v", err)
		}
	}
}

// Refresh reloads collection from storage and publishes the snapshot to its subscribers
func (h *Hub) Refresh(ctx context.Context, collection string) error {
	if !domain.IsKnownCollection(collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	snap := &Snapshot{Collection: collection}
	switch collection {
	case domain.CollectionServices:
		services, err := h.loader.LoadServices(ctx)
		if err != nil {
			h.metrics.ReloadFailed(collection)
			return fmt.Errorf("%w: collection=%s: %v", ErrReload, collection, err)
		}
		snap.Services = make([]domain.Service, 0, len(services))
		for _, s := range services {
			snap.Services = append(snap.Services, *s)
		}
	case domain.CollectionBookings:
		bookings, err := h.loader.LoadBookings(ctx)
		if err != nil {
			h.metrics.ReloadFailed(collection)
			return fmt.Errorf("%w: collection=%s: %v", ErrReload, collection, err)
		}
		snap.Bookings = make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			snap.Bookings = append(snap.Bookings, *b)
		}
	}

	h.publish(snap)
	return nil
}

func (h *Hub) publish(snap *Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.versions[snap.Collection]++
	snap.Version = h.versions[snap.Collection]
	snap.TakenAt = h.now()
	h.latest[snap.Collection] = snap

	for sub := range h.subs[snap.Collection] {
		sub.deliver(snap)
	}
	h.metrics.SnapshotPublished(snap.Collection)
}

// Subscribe opens a subscription on collection. The current snapshot, if any, is delivered first.
func (h *Hub) Subscribe(collection string) (*Subscription, error) {
	if !domain.IsKnownCollection(collection) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	sub := &Subscription{
		hub:        h,
		collection: collection,
		ch:         make(chan *Snapshot, 1),
	}
	h.subs[collection][sub] = struct{}{}
	if snap, ok := h.latest[collection]; ok {
		sub.deliver(snap)
	}
	h.metrics.SubscriptionOpened(collection)

	return sub, nil
}

// Latest returns the most recent snapshot of collection
func (h *Hub) Latest(collection string) (*Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, ok := h.latest[collection]
	return snap, ok
}

// SubscriberCount returns the number of open subscriptions on collection
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[collection])
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set := h.subs[sub.collection]
	if _, ok := set[sub]; !ok {
		return
	}
	delete(set, sub)
	close(sub.ch)
	h.metrics.SubscriptionClosed(sub.collection)
}

// Close stops the listener and closes every open subscription
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	cancel, done := h.cancel, h.done
	h.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for collection, set := range h.subs {
		for sub := range set {
			delete(set, sub)
			close(sub.ch)
			h.metrics.SubscriptionClosed(collection)
		}
	}
}
