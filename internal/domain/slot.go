package domain

import (
	"time"

	"github.com/m04kA/parlourease/pkg/types"
)

// SlotInterval returns the spacing between slots in minutes
func SlotInterval(festivalMode bool) int {
	if festivalMode {
		return FestivalSlotIntervalMinutes
	}
	return SlotIntervalMinutes
}

// SlotSequence lazily yields time-of-day labels from OpeningHour to ClosingHour inclusive.
// A sequence is finite and can be restarted with Reset.
type SlotSequence struct {
	interval int
	next     int
}

// NewSlotSequence creates a sequence for the given festival mode
func NewSlotSequence(festivalMode bool) *SlotSequence {
	return &SlotSequence{
		interval: SlotInterval(festivalMode),
		next:     OpeningHour * 60,
	}
}

// Next returns the next label and false once the window is exhausted
func (s *SlotSequence) Next() (types.TimeString, bool) {
	if s.next > ClosingHour*60 {
		return "", false
	}
	label, err := types.NewTimeStringFromMinutes(s.next)
	if err != nil {
		return "", false
	}
	s.next += s.interval
	return label, true
}

// Reset rewinds the sequence to the opening hour
func (s *SlotSequence) Reset() {
	s.next = OpeningHour * 60
}

// All returns every label of the window without consuming s
func (s *SlotSequence) All() []types.TimeString {
	seq := &SlotSequence{interval: s.interval, next: OpeningHour * 60}
	slots := make([]types.TimeString, 0, (ClosingHour-OpeningHour)*60/s.interval+1)
	for label, ok := seq.Next(); ok; label, ok = seq.Next() {
		slots = append(slots, label)
	}
	return slots
}

// SameDay reports whether a and b share a calendar day in a's location
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsPastDay reports whether day's calendar date is before now's, both taken in day's location
func IsPastDay(day, now time.Time) bool {
	loc := day.Location()
	y, m, d := day.Date()
	ny, nm, nd := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, loc))
}

// FilterPastSlots drops slots already passed when day is the same calendar day as now.
// Slots on any other day are returned unchanged.
func FilterPastSlots(day time.Time, slots []types.TimeString, now time.Time) []types.TimeString {
	if !SameDay(now, day) {
		return slots
	}

	filtered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		at, err := slot.OnDate(day)
		if err != nil {
			continue
		}
		if at.Before(now) {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// OfferedSlots returns the bookable labels for day
func OfferedSlots(day time.Time, festivalMode bool, now time.Time) []types.TimeString {
	return FilterPastSlots(day, NewSlotSequence(festivalMode).All(), now)
}

// RevalidateSelection keeps selected only while it is still offered for day.
// A stale selection is cleared: the zero TimeString and false are returned.
func RevalidateSelection(day time.Time, selected types.TimeString, festivalMode bool, now time.Time) (types.TimeString, bool) {
	if selected.IsZero() {
		return "", false
	}
	for _, slot := range OfferedSlots(day, festivalMode, now) {
		if slot == selected {
			return selected, true
		}
	}
	return "", false
}
