package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rescue_dashboard"

// Metrics хранит метрики Prometheus шлюза
type Metrics struct {
	RequestCounter     *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	RequestsInFlight   *prometheus.GaugeVec
	RemoteCallCounter  *prometheus.CounterVec
	RemoteCallDuration *prometheus.HistogramVec
	DBConnPoolStats    *prometheus.GaugeVec
}

// NewMetrics регистрирует метрики в reg; nil означает регистратор по умолчанию
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		RequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
			[]string{"route"},
		),
		RemoteCallCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "calls_total",
				Help:      "Total number of calls to the remote API",
			},
			[]string{"endpoint", "outcome"},
		),
		RemoteCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "remote",
				Name:      "call_duration_seconds",
				Help:      "Remote API call duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		DBConnPoolStats: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "connection_pool",
				Help:      "Database connection pool statistics",
			},
			[]string{"stat"}, // total, acquired, idle, empty_acquire_count, acquire_duration_ms
		),
	}
}

// ObserveRemoteCall реализует remote.Observer
func (m *Metrics) ObserveRemoteCall(endpoint, outcome string, duration time.Duration) {
	m.RemoteCallCounter.WithLabelValues(endpoint, outcome).Inc()
	m.RemoteCallDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Middleware возвращает gin middleware, считающий запросы по шаблону маршрута
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.RequestsInFlight.WithLabelValues(route).Inc()
		defer m.RequestsInFlight.WithLabelValues(route).Dec()

		start := time.Now()
		c.Next()

		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.RequestCounter.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// RecordDBPoolStats записывает статистику пула соединений
func (m *Metrics) RecordDBPoolStats(total, acquired, idle int32, emptyAcquireCount int64, acquireDuration time.Duration) {
	m.DBConnPoolStats.WithLabelValues("total").Set(float64(total))
	m.DBConnPoolStats.WithLabelValues("acquired").Set(float64(acquired))
	m.DBConnPoolStats.WithLabelValues("idle").Set(float64(idle))
	m.DBConnPoolStats.WithLabelValues("empty_acquire_count").Set(float64(emptyAcquireCount))
	m.DBConnPoolStats.WithLabelValues("acquire_duration_ms").Set(float64(acquireDuration.Milliseconds()))
}
