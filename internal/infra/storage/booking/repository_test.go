package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/ptr"
)

func TestBuildRecordPayment_SingleStatementCompletes(t *testing.T) {
	query, args, err := buildRecordPayment("b-1", domain.Payment{
		Amount: 85,
		Method: ptr.Ptr(domain.PaymentCash),
		Status: domain.PaymentPaid,
	}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE bookings SET payment_amount = $1, payment_method = $2, payment_status = $3, status = $4")
	assert.Contains(t, query, "WHERE id = $5")
	assert.Contains(t, query, "RETURNING id, customer_name")
	assert.Equal(t, []interface{}{85.0, "Cash", "Paid", "Completed", "b-1"}, args)
}

func TestBuildList_Filters(t *testing.T) {
	from, to := DayRange(time.Date(2024, 5, 10, 13, 0, 0, 0, time.UTC))
	status := domain.StatusPending

	query, args, err := buildList(domain.BookingsFilter{From: &from, To: &to, Status: &status}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE appointment_at >= $1 AND appointment_at < $2 AND status = $3")
	assert.Contains(t, query, "ORDER BY appointment_at ASC")
	assert.Equal(t, []interface{}{from, to, "Pending"}, args)
}

func TestBuildList_NoFilter(t *testing.T) {
	query, args, err := buildList(domain.BookingsFilter{}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 5, 10, 13, 45, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), end)
}
