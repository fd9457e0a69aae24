package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics метрики сервиса (HTTP и бронирования)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreated  prometheus.Counter
	bookingConflicts prometheus.Counter
	locksHeld        prometheus.Gauge
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		bookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of successfully created bookings",
			ConstLabels: constLabels,
		}),

		bookingConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Total number of booking attempts rejected with a slot conflict",
			ConstLabels: constLabels,
		}),

		locksHeld: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_locks_held",
			Help:        "Current number of live slot locks",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncBookingsCreated увеличивает счётчик успешных бронирований
func (m *Metrics) IncBookingsCreated() {
	m.bookingsCreated.Inc()
}

// IncBookingConflicts увеличивает счётчик конфликтов бронирования
func (m *Metrics) IncBookingConflicts() {
	m.bookingConflicts.Inc()
}

// SetLocksHeld выставляет текущее число живых блокировок слотов
func (m *Metrics) SetLocksHeld(n int) {
	m.locksHeld.Set(float64(n))
}
