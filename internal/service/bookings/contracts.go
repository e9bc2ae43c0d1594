package bookings

import (
	"context"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/integrations/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	RecordPayment(ctx context.Context, id string, payment domain.Payment) (*domain.Booking, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// ChangePublisher оповещает живые подписки об изменении коллекции
type ChangePublisher interface {
	Publish(ctx context.Context, collection string) error
}

// EventPublisher публикует доменные события во внешнюю шину
type EventPublisher interface {
	PublishBookingCompleted(ctx context.Context, event events.BookingCompleted) error
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
