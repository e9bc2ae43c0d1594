package dashboard

import (
	"time"

	"github.com/m04kA/parlourease/internal/realtime"
)

// SnapshotSource выдаёт подписки на живые коллекции
type SnapshotSource interface {
	Subscribe(collection string) (*realtime.Subscription, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
