package pgnotify

import (
	"github.com/m04kA/parlourease/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
