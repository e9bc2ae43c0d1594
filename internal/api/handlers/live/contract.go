package live

import (
	"github.com/m04kA/parlourease/internal/realtime"
)

type SnapshotSource interface {
	Subscribe(collection string) (*realtime.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
