package middleware

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder фиксирует завершённые HTTP запросы
type MetricsRecorder interface {
	ObserveHTTPRequest(method, path, status string, seconds float64)
}
