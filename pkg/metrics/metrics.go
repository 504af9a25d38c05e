package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	sourceRequestsTotal  *prometheus.CounterVec
	cacheRequestsTotal   *prometheus.CounterVec
	skippedDatesTotal    *prometheus.CounterVec
	calendarRendersTotal *prometheus.CounterVec

	dbConnections   *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec
	dbQueryDuration *prometheus.HistogramVec
}

// New регистрирует метрики в глобальном регистре (отдается через promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		sourceRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_source_requests_total",
			Help: "Requests to the reservation source by source kind, operation and result",
		}, []string{"service", "source", "operation", "result"}),

		cacheRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "reservation_cache_requests_total",
			Help: "Reservation cache lookups by result (hit, miss, error)",
		}, []string{"service", "result"}),

		skippedDatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_skipped_reservation_dates_total",
			Help: "Reservations left out of day matching because their date could not be parsed",
		}, []string{"service"}),

		calendarRendersTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "calendar_renders_total",
			Help: "Rendered month grids by interface language",
		}, []string{"service", "language"}),

		dbConnections: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		dbWaitCount: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		dbQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),
	}
}

// ObserveHTTP записывает результат HTTP-запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// RecordSourceRequest записывает обращение к источнику бронирований
func (m *Metrics) RecordSourceRequest(source, operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sourceRequestsTotal.WithLabelValues(m.serviceName, source, operation, result).Inc()
}

// RecordCache записывает результат обращения к кэшу: hit, miss или error
func (m *Metrics) RecordCache(result string) {
	m.cacheRequestsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// AddSkippedDates увеличивает счетчик пропущенных дат бронирований
func (m *Metrics) AddSkippedDates(n int) {
	if n <= 0 {
		return
	}
	m.skippedDatesTotal.WithLabelValues(m.serviceName).Add(float64(n))
}

// RecordRender записывает построение сетки месяца
func (m *Metrics) RecordRender(language string) {
	m.calendarRendersTotal.WithLabelValues(m.serviceName, language).Inc()
}

// ObserveQuery записывает длительность SQL-запроса
func (m *Metrics) ObserveQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	m.dbConnections.WithLabelValues(m.serviceName, "open").Set(float64(stats.OpenConnections))
	m.dbConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(stats.InUse))
	m.dbConnections.WithLabelValues(m.serviceName, "idle").Set(float64(stats.Idle))
	m.dbWaitCount.WithLabelValues(m.serviceName).Set(float64(stats.WaitCount))
}
