package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	settings     SettingsReader
	changes      ChangePublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	settings SettingsReader,
	changes ChangePublisher,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		settings:     settings,
		changes:      changes,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
// Новое бронирование всегда Pending, оплата Unpaid на сумму выбранных услуг
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: source=%s, customer=%q, services=%v, date=%s, time=%s",
		req.Source, req.CustomerName, req.ServiceIDs, req.Date, req.Time)

	now := uc.timeProvider.Now().In(uc.location)

	// 1. Валидация полей
	p, verr := validateRequest(req, uc.location, now)

	// 2. Проверка слота по текущему режиму
	festival, err := uc.settings.FestivalMode(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read festival mode: %v", err)
		return nil, fmt.Errorf("%w: Execute - read settings: %v", ErrInternal, err)
	}
	validateSlot(req, p, festival, now, verr)

	if err := verr.ErrOrNil(); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	at, err := p.slot.OnDate(p.day)
	if err != nil {
		verr.Add("appointmentTime", msgTime)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	var created *domain.Booking

	// 3. Услуги и запись читаются и пишутся в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		services, err := uc.serviceRepo.GetByIDs(txCtx, p.serviceIDs)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load services: %v", err)
			return fmt.Errorf("%w: Execute - load services: %v", ErrInternal, err)
		}

		catalog := toCatalog(services)
		summary := catalog.Summarize(p.serviceIDs)
		if summary.Resolved == 0 {
			uc.logger.Warn("CreateBooking: none of services %v exist", p.serviceIDs)
			verr.Add("serviceId", serviceMessage(req.Source))
			return fmt.Errorf("%w: %w", ErrInvalidInput, verr)
		}

		booking := &domain.Booking{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			Contact:       strings.TrimSpace(req.Contact),
			ServiceIDs:    p.serviceIDs,
			AppointmentAt: at,
			Notes:         normalizeNotes(req.Notes),
			Status:        domain.StatusPending,
			Payment:       domain.NewUnpaidPayment(summary.TotalPrice),
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: Execute - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.changes.Publish(ctx, domain.CollectionBookings); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish change: %v", err)
	}

	created.AppointmentAt = created.AppointmentAt.In(uc.location)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)
	return models.FromDomainBooking(created), nil
}

func toCatalog(services []*domain.Service) domain.Catalog {
	list := make([]domain.Service, 0, len(services))
	for _, s := range services {
		list = append(list, *s)
	}
	return domain.NewCatalog(list)
}

func serviceMessage(source Source) string {
	if source == SourceAdmin {
		return msgService
	}
	return msgServices
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
