package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	bookingRepo "github.com/m04kA/parlourease/internal/infra/storage/booking"
	"github.com/m04kA/parlourease/internal/integrations/events"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
	"github.com/m04kA/parlourease/pkg/types"
)

// Service сервис для работы с бронированиями (действия администратора)
type Service struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	changes      ChangePublisher
	events       EventPublisher
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	changes ChangePublisher,
	eventPublisher EventPublisher,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		changes:      changes,
		events:       eventPublisher,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования по времени визита
// Опционально фильтрует по дню и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	var filter domain.BookingsFilter

	if req.Date != nil {
		day, err := time.ParseInLocation(domain.DateFormat, *req.Date, s.location)
		if err != nil {
			s.logger.Warn("List: invalid date=%s", *req.Date)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		from, to := bookingRepo.DayRange(day)
		filter.From, filter.To = &from, &to
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.localize(bookings...)
	return models.FromDomainBookingList(bookings), nil
}

// Update редактирует бронирование. Статус и оплата сохраняются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: booking id=%s", id)

	appointmentAt, err := s.validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
		return nil, err
	}

	booking, err := s.load(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	booking.CustomerName = strings.TrimSpace(req.CustomerName)
	booking.Contact = strings.TrimSpace(req.Contact)
	booking.ServiceIDs = []string{req.ServiceID}
	booking.AppointmentAt = appointmentAt
	booking.Notes = normalizeNotes(req.Notes)

	updated, err := s.bookingRepo.Update(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.announce(ctx, "Update")
	s.localize(updated)
	s.logger.Info("Update: booking id=%s updated", id)
	return models.FromDomainBooking(updated), nil
}

// ApplyAction применяет действие администратора (Start, Complete)
// После Complete возвращается предзаполненная форма оплаты
func (s *Service) ApplyAction(ctx context.Context, id string, action domain.BookingAction) (*models.ActionResponse, error) {
	s.logger.Info("ApplyAction: booking id=%s action=%s", id, action)

	booking, err := s.load(ctx, "ApplyAction", id)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if err := booking.Transition(action); err != nil {
		s.logger.Warn("ApplyAction: action=%s not allowed for booking id=%s in status=%s", action, id, from)
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, booking.Status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("ApplyAction: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ApplyAction - update status: %v", ErrInternal, err)
	}
	s.announce(ctx, "ApplyAction")

	resp := &models.ActionResponse{Booking: *models.FromDomainBooking(booking)}
	if booking.Status == domain.StatusCompleted {
		catalog, err := s.catalogFor(ctx, booking)
		if err != nil {
			return nil, err
		}
		resp.PaymentForm = models.NewPaymentForm(booking, catalog)
	}

	s.logger.Info("ApplyAction: booking id=%s moved %s -> %s", id, from, booking.Status)
	return resp, nil
}

// PaymentForm открывает форму оплаты без изменения статуса
func (s *Service) PaymentForm(ctx context.Context, id string) (*models.PaymentFormResponse, error) {
	booking, err := s.load(ctx, "PaymentForm", id)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogFor(ctx, booking)
	if err != nil {
		return nil, err
	}

	return models.NewPaymentForm(booking, catalog), nil
}

// RecordPayment записывает оплату и одновременно переводит бронирование в Completed
// Работает из любого статуса, повторный вызов идемпотентен
func (s *Service) RecordPayment(ctx context.Context, id string, req *models.RecordPaymentRequest) (*models.BookingResponse, error) {
	payment := req.ToDomain()
	if err := payment.Validate(); err != nil {
		s.logger.Warn("RecordPayment: validation failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	updated, err := s.bookingRepo.RecordPayment(ctx, id, payment)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("RecordPayment: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("RecordPayment: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: RecordPayment - repository error: %v", ErrInternal, err)
	}
	s.announce(ctx, "RecordPayment")

	if updated.Payment.IsPaid() {
		s.emitCompleted(ctx, updated)
	}

	s.localize(updated)
	s.logger.Info("RecordPayment: booking id=%s payment=%.2f status=%s", id, payment.Amount, payment.Status)
	return models.FromDomainBooking(updated), nil
}

func (s *Service) load(ctx context.Context, op, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	s.localize(booking)
	return booking, nil
}

func (s *Service) catalogFor(ctx context.Context, booking *domain.Booking) (domain.Catalog, error) {
	services, err := s.serviceRepo.GetByIDs(ctx, booking.ServiceIDs)
	if err != nil {
		s.logger.Error("catalogFor: repository error for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: load services: %v", ErrInternal, err)
	}

	list := make([]domain.Service, 0, len(services))
	for _, svc := range services {
		list = append(list, *svc)
	}
	return domain.NewCatalog(list), nil
}

// announce сообщает подписчикам об изменении коллекции бронирований
// Ошибка не отменяет уже выполненную запись
func (s *Service) announce(ctx context.Context, op string) {
	if err := s.changes.Publish(ctx, domain.CollectionBookings); err != nil {
		s.logger.Warn("%s: failed to publish change: %v", op, err)
	}
}

func (s *Service) emitCompleted(ctx context.Context, b *domain.Booking) {
	method := ""
	if b.Payment.Method != nil {
		method = string(*b.Payment.Method)
	}

	err := s.events.PublishBookingCompleted(ctx, events.BookingCompleted{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		ServiceIDs:    b.ServiceIDs,
		AppointmentAt: b.AppointmentAt,
		Amount:        b.Payment.Amount,
		Method:        method,
		PaidAt:        s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Warn("RecordPayment: failed to publish booking.completed for id=%s: %v", b.ID, err)
	}
}

func (s *Service) localize(bookings ...*domain.Booking) {
	for _, b := range bookings {
		b.AppointmentAt = b.AppointmentAt.In(s.location)
	}
}

func (s *Service) validateUpdate(req *models.UpdateBookingRequest) (time.Time, error) {
	verr := domain.NewValidationError()

	if len([]rune(strings.TrimSpace(req.CustomerName))) < domain.MinCustomerNameLength {
		verr.Add("customerName", "Name must be at least 2 characters.")
	}
	if len([]rune(strings.TrimSpace(req.Contact))) < domain.MinContactLength {
		verr.Add("contact", "Please enter a valid contact number.")
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		verr.Add("serviceId", "Please select a service.")
	}
	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		verr.Add("notes", "Notes are too long.")
	}

	day, err := time.ParseInLocation(domain.DateFormat, req.Date, s.location)
	if err != nil {
		verr.Add("appointmentDate", "An appointment date is required.")
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		verr.Add("appointmentTime", "An appointment time is required.")
	}

	if err := verr.ErrOrNil(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	at, err := slot.OnDate(day)
	if err != nil {
		verr.Add("appointmentTime", "An appointment time is required.")
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}
	return at, nil
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
