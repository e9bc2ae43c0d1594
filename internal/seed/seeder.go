package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	serviceRepo "github.com/m04kA/parlourease/internal/infra/storage/service"
)

// Seeder наполняет пустое хранилище демонстрационными данными
// Все шаги best-effort: ошибки логируются и не прерывают запуск
type Seeder struct {
	services     ServiceRepository
	bookings     BookingRepository
	txManager    TransactionManager
	changes      ChangePublisher
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewSeeder создает сидер
func NewSeeder(
	services ServiceRepository,
	bookings BookingRepository,
	txManager TransactionManager,
	changes ChangePublisher,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *Seeder {
	if location == nil {
		location = time.Local
	}
	return &Seeder{
		services:     services,
		bookings:     bookings,
		txManager:    txManager,
		changes:      changes,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// Run выполняет все шаги наполнения
func (s *Seeder) Run(ctx context.Context) {
	if err := s.txManager.Do(ctx, s.seedInitial); err != nil {
		s.logger.Warn("seed: initial data skipped: %v", err)
	}
	if err := s.txManager.Do(ctx, s.seedDemoService); err != nil {
		s.logger.Warn("seed: demo service skipped: %v", err)
	}
	if err := s.txManager.Do(ctx, s.seedDemoBooking); err != nil {
		s.logger.Warn("seed: demo booking skipped: %v", err)
	}

	for _, c := range domain.Collections {
		if err := s.changes.Publish(ctx, c); err != nil {
			s.logger.Warn("seed: failed to publish change for %s: %v", c, err)
		}
	}
}

// seedInitial создает каталог и бронирования на сегодня, только если услуг ещё нет
func (s *Seeder) seedInitial(ctx context.Context) error {
	count, err := s.services.Count(ctx)
	if err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	byName := make(map[string]*domain.Service, len(initialServices))
	for i := range initialServices {
		svc := initialServices[i]
		created, err := s.services.Create(ctx, &svc)
		if err != nil {
			return fmt.Errorf("create service %q: %w", svc.Name, err)
		}
		byName[created.Name] = created
	}
	s.logger.Info("seed: %d services created", len(byName))

	bookingsCount, err := s.bookings.Count(ctx)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if bookingsCount > 0 {
		return nil
	}

	for _, sb := range initialBookings {
		svc, ok := byName[sb.serviceName]
		if !ok {
			continue
		}
		if _, err := s.bookings.Create(ctx, s.booking(sb, svc)); err != nil {
			return fmt.Errorf("create booking for %q: %w", sb.customerName, err)
		}
	}
	s.logger.Info("seed: initial bookings created")
	return nil
}

func (s *Seeder) seedDemoService(ctx context.Context) error {
	_, err := s.services.GetByName(ctx, demoServiceName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, serviceRepo.ErrServiceNotFound) {
		return fmt.Errorf("find demo service: %w", err)
	}

	svc := demoService
	if _, err := s.services.Create(ctx, &svc); err != nil {
		return fmt.Errorf("create demo service: %w", err)
	}
	s.logger.Info("seed: demo service created")
	return nil
}

// seedDemoBooking использует демо-услугу, а при её отсутствии любую услугу каталога
func (s *Seeder) seedDemoBooking(ctx context.Context) error {
	existing, err := s.bookings.GetByCustomerName(ctx, demoCustomerName)
	if err != nil {
		return fmt.Errorf("find demo booking: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	svc, err := s.services.GetByName(ctx, demoServiceName)
	if errors.Is(err, serviceRepo.ErrServiceNotFound) {
		all, listErr := s.services.List(ctx)
		if listErr != nil {
			return fmt.Errorf("list services: %w", listErr)
		}
		if len(all) == 0 {
			return nil
		}
		svc, err = all[0], nil
	}
	if err != nil {
		return fmt.Errorf("find demo service: %w", err)
	}

	if _, err := s.bookings.Create(ctx, s.booking(demoBooking, svc)); err != nil {
		return fmt.Errorf("create demo booking: %w", err)
	}
	s.logger.Info("seed: demo booking created")
	return nil
}

func (s *Seeder) booking(sb seedBooking, svc *domain.Service) *domain.Booking {
	now := s.timeProvider.Now().In(s.location)
	y, m, d := now.Date()

	b := &domain.Booking{
		CustomerName:  sb.customerName,
		Contact:       sb.contact,
		ServiceIDs:    []string{svc.ID},
		AppointmentAt: time.Date(y, m, d, sb.hour, sb.minute, 0, 0, s.location),
		Status:        sb.status,
		Payment:       domain.NewUnpaidPayment(svc.Price),
	}
	if sb.notes != "" {
		notes := sb.notes
		b.Notes = &notes
	}
	return b
}
