package domain

import "time"

// MethodTotals holds the all-time paid revenue per payment method
type MethodTotals struct {
	Cash float64
	UPI  float64
	Card float64
}

// Revenue is derived from the booking collection and never persisted
type Revenue struct {
	Daily    float64
	Monthly  float64
	ByMethod MethodTotals
}

// AggregateRevenue sums paid bookings. Daily and monthly use now's local calendar;
// method totals are all-time and skip bookings without a method.
func AggregateRevenue(bookings []Booking, now time.Time) Revenue {
	var rev Revenue
	year, month, _ := now.Date()

	for i := range bookings {
		b := &bookings[i]
		if !b.Payment.IsPaid() {
			continue
		}
		amount := b.Payment.Amount

		if SameDay(now, b.AppointmentAt) {
			rev.Daily += amount
		}
		by, bm, _ := b.AppointmentAt.In(now.Location()).Date()
		if by == year && bm == month {
			rev.Monthly += amount
		}

		if b.Payment.Method == nil {
			continue
		}
		switch *b.Payment.Method {
		case PaymentCash:
			rev.ByMethod.Cash += amount
		case PaymentUPI:
			rev.ByMethod.UPI += amount
		case PaymentCard:
			rev.ByMethod.Card += amount
		}
	}

	return rev
}
