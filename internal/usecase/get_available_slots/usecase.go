package get_available_slots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	bookingRepo "github.com/m04kA/parlourease/internal/infra/storage/booking"
	"github.com/m04kA/parlourease/pkg/types"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	bookingRepo  BookingRepository
	settings     SettingsReader
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings SettingsReader,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
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

// Execute возвращает слоты на день
// Для сегодняшнего дня прошедшие слоты отбрасываются, для прошедших дней список пуст
// Ранее выбранное время сбрасывается, если его больше нет среди предлагаемых
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	day, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.Date), uc.location)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date=%q", req.Date)
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	var selected types.TimeString
	if req.Selected != nil && strings.TrimSpace(*req.Selected) != "" {
		selected, err = types.NewTimeStringFromString(strings.TrimSpace(*req.Selected))
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: invalid selected time=%q", *req.Selected)
			return nil, fmt.Errorf("%w: invalid selected time %q", ErrInvalidInput, *req.Selected)
		}
	}

	festival, err := uc.festivalMode(ctx, req.Festival)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	resp := &Response{
		Date:            day.Format(domain.DateFormat),
		FestivalMode:    festival,
		IntervalMinutes: domain.SlotInterval(festival),
		Slots:           []Slot{},
	}

	if domain.IsPastDay(day, now) {
		uc.logger.Info("GetAvailableSlots: date=%s is in the past", resp.Date)
		resp.SelectionCleared = !selected.IsZero()
		return resp, nil
	}

	labels := domain.OfferedSlots(day, festival, now)

	from, to := bookingRepo.DayRange(day)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{From: &from, To: &to})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for date=%s: %v", resp.Date, err)
		return nil, fmt.Errorf("%w: Execute - list bookings: %v", ErrInternal, err)
	}
	resp.Slots = buildSlots(labels, bookings, uc.location)

	if !selected.IsZero() {
		kept, ok := domain.RevalidateSelection(day, selected, festival, now)
		resp.Selected = kept.String()
		resp.SelectionCleared = !ok
	}

	uc.logger.Info("GetAvailableSlots: date=%s festival=%t slots=%d", resp.Date, festival, len(resp.Slots))
	return resp, nil
}

func (uc *UseCase) festivalMode(ctx context.Context, override *bool) (bool, error) {
	if override != nil {
		return *override, nil
	}
	festival, err := uc.settings.FestivalMode(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to read festival mode: %v", err)
		return false, fmt.Errorf("%w: Execute - read settings: %v", ErrInternal, err)
	}
	return festival, nil
}
