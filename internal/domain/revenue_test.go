package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/parlourease/pkg/ptr"
)

func paidBooking(at time.Time, amount float64, method PaymentMethod) Booking {
	return Booking{
		AppointmentAt: at,
		Status:        StatusCompleted,
		Payment:       Payment{Amount: amount, Method: ptr.Ptr(method), Status: PaymentPaid},
	}
}

func TestAggregateRevenue(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)

	bookings := []Booking{
		paidBooking(time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC), 50, PaymentCash),
		paidBooking(time.Date(2024, 5, 3, 11, 0, 0, 0, time.UTC), 35, PaymentUPI),
		paidBooking(time.Date(2024, 4, 30, 11, 0, 0, 0, time.UTC), 200, PaymentCard),
		// Unpaid bookings never count
		{
			AppointmentAt: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
			Payment:       Payment{Amount: 999, Method: ptr.Ptr(PaymentCash), Status: PaymentUnpaid},
		},
		// Paid without method: counted by period only
		{
			AppointmentAt: time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC),
			Payment:       Payment{Amount: 10, Status: PaymentPaid},
		},
	}

	rev := AggregateRevenue(bookings, now)

	assert.Equal(t, 60.0, rev.Daily)
	assert.Equal(t, 95.0, rev.Monthly)
	assert.Equal(t, MethodTotals{Cash: 50, UPI: 35, Card: 200}, rev.ByMethod)
}

func TestAggregateRevenue_UnpaidContributesNothing(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	bookings := []Booking{{
		AppointmentAt: now,
		Payment:       Payment{Amount: 120, Method: ptr.Ptr(PaymentCard), Status: PaymentUnpaid},
	}}

	assert.Equal(t, Revenue{}, AggregateRevenue(bookings, now))
}

func TestAggregateRevenue_OtherDaysExcludedFromDaily(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 30, 0, 0, time.UTC)
	bookings := []Booking{
		paidBooking(time.Date(2024, 5, 9, 23, 59, 0, 0, time.UTC), 40, PaymentCash),
		paidBooking(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), 40, PaymentCash),
	}

	rev := AggregateRevenue(bookings, now)
	assert.Zero(t, rev.Daily)
	assert.Equal(t, 80.0, rev.Monthly)
}

func TestAggregateRevenue_BundledServicesPaidCash(t *testing.T) {
	now := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	catalog := NewCatalog([]Service{
		{ID: "s1", Name: "Haircut & Style", Price: 50},
		{ID: "s2", Name: "Manicure", Price: 35},
	})

	b := Booking{
		ServiceIDs:    []string{"s1", "s2"},
		AppointmentAt: now,
		Status:        StatusInProgress,
		Payment:       NewUnpaidPayment(0),
	}
	b.RecordPayment(Payment{Amount: b.PaymentPrefill(catalog), Method: ptr.Ptr(PaymentCash), Status: PaymentPaid})

	rev := AggregateRevenue([]Booking{b}, now)
	assert.Equal(t, 85.0, rev.ByMethod.Cash)
}

func TestAggregateRevenue_SalonCalendarAcrossMonthBoundary(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	// 2024-05-31 19:30 UTC
	now := time.Date(2024, 6, 1, 1, 0, 0, 0, ist)

	bookings := []Booking{
		// 00:30 June 1 in the salon, still May 31 in UTC
		paidBooking(time.Date(2024, 5, 31, 19, 0, 0, 0, time.UTC), 80, PaymentCash),
		// 23:30 May 31 in the salon
		paidBooking(time.Date(2024, 5, 31, 18, 0, 0, 0, time.UTC), 45, PaymentUPI),
	}

	rev := AggregateRevenue(bookings, now)

	assert.Equal(t, 80.0, rev.Daily)
	assert.Equal(t, 80.0, rev.Monthly)
	assert.Equal(t, MethodTotals{Cash: 80, UPI: 45}, rev.ByMethod)
}
