package realtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
)

type stubServiceLister struct{ services []*domain.Service }

func (s stubServiceLister) List(ctx context.Context) ([]*domain.Service, error) {
	return s.services, nil
}

type stubBookingLister struct{ got *domain.BookingsFilter }

func (s *stubBookingLister) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.got = &filter
	return []*domain.Booking{{ID: "b1"}}, nil
}

func TestStoreLoader_LoadsWholeCollections(t *testing.T) {
	bookings := &stubBookingLister{}
	loader := NewStoreLoader(stubServiceLister{services: []*domain.Service{{ID: "s1"}}}, bookings)

	services, err := loader.LoadServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 1)

	list, err := loader.LoadBookings(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NotNil(t, bookings.got)
	assert.Nil(t, bookings.got.From)
	assert.Nil(t, bookings.got.To)
	assert.Nil(t, bookings.got.Status)
}
