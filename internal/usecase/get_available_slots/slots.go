package get_available_slots

import (
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/types"
)

// buildSlots формирует слоты дня с числом уже записанных визитов
func buildSlots(labels []types.TimeString, bookings []*domain.Booking, loc *time.Location) []Slot {
	booked := countBookedAt(bookings, loc)

	result := make([]Slot, len(labels))
	for i, label := range labels {
		result[i] = Slot{
			StartTime: label,
			Booked:    booked[label],
		}
	}
	return result
}

// countBookedAt группирует бронирования по времени начала в часовом поясе салона
func countBookedAt(bookings []*domain.Booking, loc *time.Location) map[types.TimeString]int {
	counts := make(map[types.TimeString]int, len(bookings))
	for _, b := range bookings {
		counts[types.NewTimeString(b.AppointmentAt.In(loc))]++
	}
	return counts
}
