package seed

import (
	"context"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	Count(ctx context.Context) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByCustomerName(ctx context.Context, name string) ([]*domain.Booking, error)
	Count(ctx context.Context) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ChangePublisher сообщает подписчикам об изменении коллекции
type ChangePublisher interface {
	Publish(ctx context.Context, collection string) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
