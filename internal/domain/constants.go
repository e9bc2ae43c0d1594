package domain

// Operating window of the salon. Both bounds are inclusive slot labels.
const (
	OpeningHour = 9
	ClosingHour = 18
)

// Slot interval policy
const (
	SlotIntervalMinutes         = 15
	FestivalSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinCustomerNameLength = 2
	MinContactLength      = 10
	MinServiceNameLength  = 2
	MaxNotesLength        = 500
)

// UnknownServiceName is displayed when none of a booking's service references resolve.
const UnknownServiceName = "Unknown Service"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Live collections
const (
	CollectionServices = "services"
	CollectionBookings = "bookings"
)

// Collections lists every collection the sync layer serves
var Collections = []string{CollectionServices, CollectionBookings}

// IsKnownCollection reports whether name is a served collection
func IsKnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
