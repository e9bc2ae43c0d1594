package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec

	SyncSubscriptions  *prometheus.GaugeVec
	SyncSnapshotsTotal *prometheus.CounterVec
	SyncReloadErrors   *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает и регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{}),

		SyncSubscriptions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "sync_active_subscriptions",
			Help:        "Number of active live-query subscriptions",
			ConstLabels: constLabels,
		}, []string{"collection"}),

		SyncSnapshotsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_snapshots_published_total",
			Help:        "Total number of full-collection snapshots published",
			ConstLabels: constLabels,
		}, []string{"collection"}),

		SyncReloadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_reload_errors_total",
			Help:        "Total number of failed collection reloads",
			ConstLabels: constLabels,
		}, []string{"collection"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.SyncSubscriptions,
		m.SyncSnapshotsTotal,
		m.SyncReloadErrors,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetPoolStats обновляет метрики пула соединений
func (m *Metrics) SetPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues().Set(float64(open))
	m.DBInUseConnections.WithLabelValues().Set(float64(inUse))
	m.DBIdleConnections.WithLabelValues().Set(float64(idle))
	m.DBWaitCount.WithLabelValues().Set(float64(waitCount))
}

// SubscriptionOpened увеличивает счётчик активных подписок
func (m *Metrics) SubscriptionOpened(collection string) {
	if m == nil {
		return
	}
	m.SyncSubscriptions.WithLabelValues(collection).Inc()
}

// SubscriptionClosed уменьшает счётчик активных подписок
func (m *Metrics) SubscriptionClosed(collection string) {
	if m == nil {
		return
	}
	m.SyncSubscriptions.WithLabelValues(collection).Dec()
}

// SnapshotPublished фиксирует рассылку снимка коллекции
func (m *Metrics) SnapshotPublished(collection string) {
	if m == nil {
		return
	}
	m.SyncSnapshotsTotal.WithLabelValues(collection).Inc()
}

// ReloadFailed фиксирует неудачную перезагрузку коллекции
func (m *Metrics) ReloadFailed(collection string) {
	if m == nil {
		return
	}
	m.SyncReloadErrors.WithLabelValues(collection).Inc()
}
