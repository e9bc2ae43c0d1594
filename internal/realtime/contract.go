package realtime

import (
	"context"

	"github.com/m04kA/parlourease/internal/domain"
)

// Loader reads a full collection from storage in its live-query order
type Loader interface {
	LoadServices(ctx context.Context) ([]*domain.Service, error)
	LoadBookings(ctx context.Context) ([]*domain.Booking, error)
}

// Notifier delivers names of changed collections. An empty name means "reload everything".
// The returned channel is closed once ctx is cancelled or the listener stops.
type Notifier interface {
	Listen(ctx context.Context) (<-chan string, error)
}

// Publisher announces that a collection changed
type Publisher interface {
	Publish(ctx context.Context, collection string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
