package realtime

import (
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

// Snapshot is the full content of one collection at a point in time.
// Snapshots are shared between subscribers and must not be mutated.
type Snapshot struct {
	Collection string
	Version    uint64
	Services   []domain.Service
	Bookings   []domain.Booking
	TakenAt    time.Time
}

// Len returns the number of documents in the snapshot
func (s *Snapshot) Len() int {
	if s.Collection == domain.CollectionServices {
		return len(s.Services)
	}
	return len(s.Bookings)
}
