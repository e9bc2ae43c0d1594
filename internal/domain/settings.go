package domain

import "time"

// SalonSettings holds the salon-wide booking policy. There is a single row.
type SalonSettings struct {
	FestivalMode bool
	UpdatedAt    time.Time
}
