package catalog

import (
	"context"

	"github.com/m04kA/parlourease/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// ChangePublisher оповещает живые подписки об изменении коллекции
type ChangePublisher interface {
	Publish(ctx context.Context, collection string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
