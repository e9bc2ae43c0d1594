package realtime

import (
	"context"

	"github.com/m04kA/parlourease/internal/domain"
)

// ServiceLister reads the services collection ordered by name
type ServiceLister interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// BookingLister reads bookings matching a filter ordered by appointment time
type BookingLister interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// StoreLoader adapts the storage repositories to Loader
type StoreLoader struct {
	services ServiceLister
	bookings BookingLister
}

func NewStoreLoader(services ServiceLister, bookings BookingLister) *StoreLoader {
	return &StoreLoader{services: services, bookings: bookings}
}

func (l *StoreLoader) LoadServices(ctx context.Context) ([]*domain.Service, error) {
	return l.services.List(ctx)
}

func (l *StoreLoader) LoadBookings(ctx context.Context) ([]*domain.Booking, error) {
	return l.bookings.List(ctx, domain.BookingsFilter{})
}
