package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/pkg/logger"
	"github.com/m04kA/parlourease/pkg/ptr"
	"github.com/m04kA/parlourease/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.BookingsFilter
	calls    int
}

func (s *stubBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.calls++
	s.filter = filter
	return s.bookings, s.err
}

type stubSettings struct {
	festival bool
	err      error
}

func (s stubSettings) FestivalMode(ctx context.Context) (bool, error) {
	return s.festival, s.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var now = time.Date(2024, 5, 10, 12, 10, 0, 0, time.UTC)

func newUseCase(repo *stubBookingRepo, settings stubSettings) *UseCase {
	return NewUseCase(repo, settings, time.UTC, logger.Discard()).WithTimeProvider(fixedClock{now: now})
}

func labels(slots []Slot) []types.TimeString {
	out := make([]types.TimeString, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime
	}
	return out
}

func TestExecute_FutureDayOffersFullDay(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(repo, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-11"})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 37)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[36].StartTime)
	assert.Equal(t, 15, resp.IntervalMinutes)
	assert.False(t, resp.FestivalMode)

	require.NotNil(t, repo.filter.From)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), *repo.filter.From)
}

func TestExecute_FestivalFromSettings(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{festival: true})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-11"})
	require.NoError(t, err)

	assert.True(t, resp.FestivalMode)
	assert.Len(t, resp.Slots, 19)
	assert.Equal(t, 30, resp.IntervalMinutes)
}

func TestExecute_ExplicitFestivalOverridesSettings(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{festival: true, err: errors.New("must not be read")})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-11", Festival: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 37)
}

func TestExecute_TodayDropsPastSlots(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10"})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:15"), resp.Slots[0].StartTime)
	assert.NotContains(t, labels(resp.Slots), types.TimeString("12:00"))
}

func TestExecute_PastDayIsEmpty(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(repo, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-09", Selected: ptr.Ptr("10:00")})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.True(t, resp.SelectionCleared)
	assert.Zero(t, repo.calls)
}

func TestExecute_StaleSelectionCleared(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Selected: ptr.Ptr("11:00")})
	require.NoError(t, err)

	assert.Empty(t, resp.Selected)
	assert.True(t, resp.SelectionCleared)
}

func TestExecute_ValidSelectionKept(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-10", Selected: ptr.Ptr("15:30")})
	require.NoError(t, err)

	assert.Equal(t, "15:30", resp.Selected)
	assert.False(t, resp.SelectionCleared)
}

func TestExecute_BookedCountsAreInformational(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: "b1", AppointmentAt: time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)},
		{ID: "b2", AppointmentAt: time.Date(2024, 5, 11, 10, 0, 0, 0, time.UTC)},
	}}
	uc := newUseCase(repo, stubSettings{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-05-11"})
	require.NoError(t, err)

	for _, s := range resp.Slots {
		if s.StartTime == "10:00" {
			assert.Equal(t, 2, s.Booked)
		} else {
			assert.Zero(t, s.Booked)
		}
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{}, stubSettings{})

	_, err := uc.Execute(context.Background(), &Request{Date: "10/05/2024"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: "2024-05-11", Selected: ptr.Ptr("25:00")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	uc := newUseCase(&stubBookingRepo{err: errors.New("timeout")}, stubSettings{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-05-11"})
	assert.ErrorIs(t, err, ErrInternal)
}
