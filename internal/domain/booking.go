package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusInProgress BookingStatus = "In Progress"
	StatusCompleted  BookingStatus = "Completed"
)

// IsValid returns true for the three known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// BookingAction is an admin-issued action on a booking
type BookingAction string

const (
	ActionStart         BookingAction = "start"
	ActionComplete      BookingAction = "complete"
	ActionManagePayment BookingAction = "manage_payment"
)

// Booking represents an appointment in the salon
type Booking struct {
	ID            string
	CustomerName  string
	Contact       string
	ServiceIDs    []string
	AppointmentAt time.Time
	Notes         *string
	Status        BookingStatus
	Payment       Payment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NextStatus returns the status reached by applying action to from.
// Only Start (Pending -> In Progress) and Complete (In Progress -> Completed) move the status.
func NextStatus(from BookingStatus, action BookingAction) (BookingStatus, error) {
	switch {
	case from == StatusPending && action == ActionStart:
		return StatusInProgress, nil
	case from == StatusInProgress && action == ActionComplete:
		return StatusCompleted, nil
	default:
		return from, ErrInvalidTransition
	}
}

// Transition applies a status-changing action
func (b *Booking) Transition(action BookingAction) error {
	next, err := NextStatus(b.Status, action)
	if err != nil {
		return err
	}
	b.Status = next
	return nil
}

// AvailableActions returns the actions offered for the current status
func (b *Booking) AvailableActions() []BookingAction {
	switch b.Status {
	case StatusPending:
		return []BookingAction{ActionStart}
	case StatusInProgress:
		return []BookingAction{ActionComplete}
	case StatusCompleted:
		return []BookingAction{ActionManagePayment}
	default:
		return nil
	}
}

// RecordPayment sets the payment and marks the booking Completed regardless of its current status
func (b *Booking) RecordPayment(p Payment) {
	b.Payment = p
	b.Status = StatusCompleted
}

// PaymentPrefill returns the amount the payment form opens with:
// the existing amount when positive, otherwise the sum of the referenced service prices.
func (b *Booking) PaymentPrefill(catalog Catalog) float64 {
	if b.Payment.Amount > 0 {
		return b.Payment.Amount
	}
	return catalog.Summarize(b.ServiceIDs).TotalPrice
}

// IsOnDay returns true if the appointment falls on the same calendar day as day
func (b *Booking) IsOnDay(day time.Time) bool {
	return SameDay(day, b.AppointmentAt)
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	From   *time.Time     // Начало периода (включительно)
	To     *time.Time     // Конец периода (не включительно)
	Status *BookingStatus // Фильтр по статусу (опционально)
}
