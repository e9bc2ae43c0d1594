package events

import "time"

// Routing keys
const (
	RoutingBookingCompleted = "booking.completed"
)

// BookingCompleted публикуется после записи оплаты со статусом Paid
type BookingCompleted struct {
	BookingID     string    `json:"bookingId"`
	CustomerName  string    `json:"customerName"`
	ServiceIDs    []string  `json:"serviceIds"`
	AppointmentAt time.Time `json:"appointmentDateTime"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	PaidAt        time.Time `json:"paidAt"`
}
