// Package metrics exposes Prometheus collectors for the driver service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names
const (
	MetricHTTPRequestsTotal    = "driver_http_requests_total"
	MetricHTTPRequestDuration  = "driver_http_request_duration_seconds"
	MetricTripTransitionsTotal = "driver_trip_transitions_total"
	MetricDepositsTotal        = "driver_deposits_total"
	MetricFeesChargedTotal     = "driver_platform_fees_charged_total"
	MetricOnlineDrivers        = "driver_online_drivers"
	MetricDegradedWritesTotal  = "driver_degraded_writes_total"
)

// Metrics holds the service collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	tripTransitions *prometheus.CounterVec
	deposits        *prometheus.CounterVec
	feesCharged     prometheus.Counter
	onlineDrivers   prometheus.Gauge
	degradedWrites  *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPRequestDuration,
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		tripTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricTripTransitionsTotal,
			Help: "Trip lifecycle transitions by resulting status.",
		}, []string{"status"}),
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricDepositsTotal,
			Help: "Deposit requests by payment method and outcome.",
		}, []string{"method", "status"}),
		feesCharged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricFeesChargedTotal,
			Help: "Sum of platform fees debited from driver balances, in rupiah.",
		}),
		onlineDrivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricOnlineDrivers,
			Help: "Drivers currently online.",
		}),
		degradedWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricDegradedWritesTotal,
			Help: "Best-effort writes that failed after retries, by target.",
		}, []string{"target"}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.tripTransitions,
		m.deposits,
		m.feesCharged,
		m.onlineDrivers,
		m.degradedWrites,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Middleware records request count and latency per route template
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.httpRequests.WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).Inc()
			m.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// TripTransition counts a trip reaching status
func (m *Metrics) TripTransition(status string) {
	if m == nil {
		return
	}
	m.tripTransitions.WithLabelValues(status).Inc()
}

// Deposit counts a deposit with the given method and outcome
func (m *Metrics) Deposit(method, status string) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(method, status).Inc()
}

// FeeCharged adds a debited platform fee
func (m *Metrics) FeeCharged(amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.feesCharged.Add(float64(amount))
}

// SetOnlineDrivers sets the online gauge
func (m *Metrics) SetOnlineDrivers(n int) {
	if m == nil {
		return
	}
	m.onlineDrivers.Set(float64(n))
}

// DegradedWrite counts a best-effort write that gave up
func (m *Metrics) DegradedWrite(target string) {
	if m == nil {
		return
	}
	m.degradedWrites.WithLabelValues(target).Inc()
}
