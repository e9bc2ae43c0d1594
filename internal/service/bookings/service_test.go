package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	bookingRepo "github.com/m04kA/parlourease/internal/infra/storage/booking"
	"github.com/m04kA/parlourease/internal/integrations/events"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
	"github.com/m04kA/parlourease/pkg/logger"
	"github.com/m04kA/parlourease/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockBookingRepo) RecordPayment(ctx context.Context, id string, payment domain.Payment) (*domain.Booking, error) {
	args := m.Called(ctx, id, payment)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type stubServiceRepo struct {
	services []*domain.Service
}

func (r *stubServiceRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, s := range r.services {
		for _, id := range ids {
			if s.ID == id {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

type recordingPublisher struct {
	collections []string
}

func (p *recordingPublisher) Publish(ctx context.Context, collection string) error {
	p.collections = append(p.collections, collection)
	return nil
}

type recordingEvents struct {
	completed []events.BookingCompleted
}

func (e *recordingEvents) PublishBookingCompleted(ctx context.Context, event events.BookingCompleted) error {
	e.completed = append(e.completed, event)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fixture struct {
	svc      *Service
	repo     *mockBookingRepo
	changes  *recordingPublisher
	events   *recordingEvents
	services *stubServiceRepo
}

func newFixture() *fixture {
	f := &fixture{
		repo:    &mockBookingRepo{},
		changes: &recordingPublisher{},
		events:  &recordingEvents{},
		services: &stubServiceRepo{services: []*domain.Service{
			{ID: "s1", Name: "Haircut & Style", Price: 50},
			{ID: "s2", Name: "Manicure", Price: 35},
		}},
	}
	f.svc = NewService(
		f.repo,
		f.services,
		f.changes,
		f.events,
		fixedClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)},
		time.UTC,
		logger.Discard(),
	)
	return f
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            "b-1",
		CustomerName:  "Alice Johnson",
		Contact:       "555-123-4567",
		ServiceIDs:    []string{"s1", "s2"},
		AppointmentAt: time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
		Status:        status,
		Payment:       domain.NewUnpaidPayment(0),
	}
}

func TestService_ApplyAction_StartThenComplete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "b-1").Return(sampleBooking(domain.StatusPending), nil).Once()
	f.repo.On("UpdateStatus", ctx, "b-1", domain.StatusInProgress).Return(nil).Once()

	resp, err := f.svc.ApplyAction(ctx, "b-1", domain.ActionStart)
	require.NoError(t, err)
	assert.Equal(t, "In Progress", resp.Booking.Status)
	assert.Nil(t, resp.PaymentForm)

	f.repo.On("GetByID", ctx, "b-1").Return(sampleBooking(domain.StatusInProgress), nil).Once()
	f.repo.On("UpdateStatus", ctx, "b-1", domain.StatusCompleted).Return(nil).Once()

	resp, err = f.svc.ApplyAction(ctx, "b-1", domain.ActionComplete)
	require.NoError(t, err)
	assert.Equal(t, "Completed", resp.Booking.Status)
	require.NotNil(t, resp.PaymentForm)
	assert.Equal(t, 85.0, resp.PaymentForm.Amount)
	assert.Equal(t, "Haircut & Style, Manicure", resp.PaymentForm.Services)

	assert.Equal(t, []string{domain.CollectionBookings, domain.CollectionBookings}, f.changes.collections)
	f.repo.AssertExpectations(t)
}

func TestService_ApplyAction_InvalidTransition(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "b-1").Return(sampleBooking(domain.StatusPending), nil)

	_, err := f.svc.ApplyAction(ctx, "b-1", domain.ActionComplete)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	f.repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, f.changes.collections)
}

func TestService_ApplyAction_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", ctx, "missing").Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.svc.ApplyAction(ctx, "missing", domain.ActionStart)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_PaymentForm_KeepsExistingAmount(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	b := sampleBooking(domain.StatusCompleted)
	b.Payment = domain.Payment{Amount: 70, Method: ptr.Ptr(domain.PaymentUPI), Status: domain.PaymentPaid}
	f.repo.On("GetByID", ctx, "b-1").Return(b, nil)

	form, err := f.svc.PaymentForm(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 70.0, form.Amount)
	assert.Equal(t, "UPI", *form.Method)
	assert.Equal(t, "Paid", form.Status)
}

func TestService_RecordPayment_PaidPublishesEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	payment := domain.Payment{Amount: 85, Method: ptr.Ptr(domain.PaymentCash), Status: domain.PaymentPaid}
	completed := sampleBooking(domain.StatusCompleted)
	completed.Payment = payment
	f.repo.On("RecordPayment", ctx, "b-1", payment).Return(completed, nil)

	resp, err := f.svc.RecordPayment(ctx, "b-1", &models.RecordPaymentRequest{
		Amount: 85,
		Method: ptr.Ptr("Cash"),
		Status: "Paid",
	})
	require.NoError(t, err)

	assert.Equal(t, "Completed", resp.Status)
	assert.Equal(t, []string{"manage_payment"}, resp.Actions)
	require.Len(t, f.events.completed, 1)
	assert.Equal(t, 85.0, f.events.completed[0].Amount)
	assert.Equal(t, []string{domain.CollectionBookings}, f.changes.collections)
}

func TestService_RecordPayment_UnpaidSkipsEvent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	payment := domain.Payment{Amount: 85, Method: ptr.Ptr(domain.PaymentCard), Status: domain.PaymentUnpaid}
	completed := sampleBooking(domain.StatusCompleted)
	completed.Payment = payment
	f.repo.On("RecordPayment", ctx, "b-1", payment).Return(completed, nil)

	_, err := f.svc.RecordPayment(ctx, "b-1", &models.RecordPaymentRequest{Amount: 85, Method: ptr.Ptr("Card"), Status: "Unpaid"})
	require.NoError(t, err)
	assert.Empty(t, f.events.completed)
}

func TestService_RecordPayment_ValidationRejectsBeforeWrite(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RecordPayment(context.Background(), "b-1", &models.RecordPaymentRequest{Amount: 0, Status: "Paid"})

	require.ErrorIs(t, err, ErrInvalidInput)
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "amount")
	assert.Contains(t, verr.Fields, "method")
	f.repo.AssertNotCalled(t, "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_KeepsStatusAndPayment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	existing := sampleBooking(domain.StatusInProgress)
	existing.Payment = domain.Payment{Amount: 85, Status: domain.PaymentUnpaid}
	f.repo.On("GetByID", ctx, "b-1").Return(existing, nil)
	f.repo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusInProgress &&
			b.Payment.Amount == 85 &&
			len(b.ServiceIDs) == 1 && b.ServiceIDs[0] == "s2" &&
			b.AppointmentAt.Equal(time.Date(2024, 5, 11, 14, 30, 0, 0, time.UTC))
	})).Return(existing, nil)

	_, err := f.svc.Update(ctx, "b-1", &models.UpdateBookingRequest{
		CustomerName: "Alice Johnson",
		Contact:      "555-123-4567",
		ServiceID:    "s2",
		Date:         "2024-05-11",
		Time:         "14:30",
	})
	require.NoError(t, err)
	f.repo.AssertExpectations(t)
}

func TestService_Update_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), "b-1", &models.UpdateBookingRequest{
		CustomerName: "A",
		Contact:      "123",
		Date:         "tomorrow",
		Time:         "25:00",
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"customerName", "contact", "serviceId", "appointmentDate", "appointmentTime"} {
		assert.Contains(t, verr.Fields, field)
	}
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_List_FiltersByDay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	f.repo.On("List", ctx, mock.MatchedBy(func(filter domain.BookingsFilter) bool {
		return filter.From != nil && filter.From.Equal(from) && filter.To.Equal(to) && filter.Status == nil
	})).Return([]*domain.Booking{sampleBooking(domain.StatusPending)}, nil)

	resp, err := f.svc.List(ctx, &models.ListBookingsRequest{Date: ptr.Ptr("2024-05-10")})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "10:00", resp.Bookings[0].Time)
}

func TestService_List_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("Cancelled")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
