package seed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/internal/domain"
	serviceRepo "github.com/m04kA/parlourease/internal/infra/storage/service"
	"github.com/m04kA/parlourease/pkg/logger"
)

type memoryServices struct {
	items     []*domain.Service
	createErr error
}

func (m *memoryServices) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *s
	created.ID = fmt.Sprintf("s%d", len(m.items)+1)
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memoryServices) List(ctx context.Context) ([]*domain.Service, error) {
	return m.items, nil
}

func (m *memoryServices) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	for _, s := range m.items {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (m *memoryServices) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

type memoryBookings struct {
	items []*domain.Booking
}

func (m *memoryBookings) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = fmt.Sprintf("b%d", len(m.items)+1)
	m.items = append(m.items, &created)
	return &created, nil
}

func (m *memoryBookings) GetByCustomerName(ctx context.Context, name string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range m.items {
		if b.CustomerName == name {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryBookings) Count(ctx context.Context) (int, error) {
	return len(m.items), nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingPublisher struct {
	collections []string
}

func (p *recordingPublisher) Publish(ctx context.Context, collection string) error {
	p.collections = append(p.collections, collection)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var now = time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

func newSeeder(services *memoryServices, bookings *memoryBookings, changes *recordingPublisher) *Seeder {
	return NewSeeder(services, bookings, passthroughTx{}, changes, fixedClock{now: now}, time.UTC, logger.Discard())
}

func TestRun_EmptyStore(t *testing.T) {
	services := &memoryServices{}
	bookings := &memoryBookings{}
	changes := &recordingPublisher{}

	newSeeder(services, bookings, changes).Run(context.Background())

	require.Len(t, services.items, 6)
	assert.Equal(t, demoServiceName, services.items[5].Name)

	require.Len(t, bookings.items, 3)
	alice, brenda, demo := bookings.items[0], bookings.items[1], bookings.items[2]

	assert.Equal(t, "Alice Johnson", alice.CustomerName)
	assert.Equal(t, time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC), alice.AppointmentAt)
	assert.Equal(t, domain.StatusPending, alice.Status)
	assert.Equal(t, 50.0, alice.Payment.Amount)

	assert.Equal(t, domain.StatusInProgress, brenda.Status)
	assert.Equal(t, time.Date(2024, 5, 10, 11, 30, 0, 0, time.UTC), brenda.AppointmentAt)

	assert.Equal(t, demoCustomerName, demo.CustomerName)
	assert.Equal(t, []string{services.items[5].ID}, demo.ServiceIDs)
	assert.Equal(t, 99.0, demo.Payment.Amount)

	assert.ElementsMatch(t, domain.Collections, changes.collections)
}

func TestRun_Idempotent(t *testing.T) {
	services := &memoryServices{}
	bookings := &memoryBookings{}
	seeder := newSeeder(services, bookings, &recordingPublisher{})

	seeder.Run(context.Background())
	seeder.Run(context.Background())

	assert.Len(t, services.items, 6)
	assert.Len(t, bookings.items, 3)
}

func TestRun_ExistingCatalogOnlyAddsDemo(t *testing.T) {
	services := &memoryServices{items: []*domain.Service{{ID: "x", Name: "Threading", Price: 10, DurationMinutes: 15}}}
	bookings := &memoryBookings{}

	newSeeder(services, bookings, &recordingPublisher{}).Run(context.Background())

	require.Len(t, services.items, 2)
	require.Len(t, bookings.items, 1)
	assert.Equal(t, demoCustomerName, bookings.items[0].CustomerName)
}

func TestRun_FailuresAreSwallowed(t *testing.T) {
	services := &memoryServices{createErr: errors.New("read-only")}
	bookings := &memoryBookings{}
	changes := &recordingPublisher{}

	assert.NotPanics(t, func() {
		newSeeder(services, bookings, changes).Run(context.Background())
	})
	assert.Empty(t, services.items)
	assert.Empty(t, bookings.items)
	assert.Len(t, changes.collections, len(domain.Collections))
}
