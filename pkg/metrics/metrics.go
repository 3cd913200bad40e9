package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// HTTP-метрики заполняет middleware, метрики внешнего хранилища - клиент sheetstore
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storeRequestsTotal   *prometheus.CounterVec
	storeRequestDuration *prometheus.HistogramVec

	cacheHitsTotal   prometheus.Counter
	cacheMissesTotal prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		storeRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "sheetstore_requests_total",
			Help:        "Total number of requests to the external sheet store",
			ConstLabels: labels,
		}, []string{"operation", "worksheet", "outcome"}),

		storeRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "sheetstore_request_duration_seconds",
			Help:        "Sheet store request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "worksheet"}),

		cacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_cache_hits_total",
			Help:        "Total number of reservation cache hits",
			ConstLabels: labels,
		}),

		cacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_cache_misses_total",
			Help:        "Total number of reservation cache misses",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveStoreRequest фиксирует обращение к внешнему хранилищу строк
func (m *Metrics) ObserveStoreRequest(operation, worksheet, outcome string, duration time.Duration) {
	m.storeRequestsTotal.WithLabelValues(operation, worksheet, outcome).Inc()
	m.storeRequestDuration.WithLabelValues(operation, worksheet).Observe(duration.Seconds())
}

// ObserveCacheHit фиксирует попадание в кеш чтения
func (m *Metrics) ObserveCacheHit() {
	m.cacheHitsTotal.Inc()
}

// ObserveCacheMiss фиксирует промах кеша чтения
func (m *Metrics) ObserveCacheMiss() {
	m.cacheMissesTotal.Inc()
}
