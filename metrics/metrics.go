// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus metrics for the registry API.
//
// All recording methods are safe on a nil *Manager, so handlers can be
// built without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the registry and every metric the service exports.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	personUpdates prometheus.Counter
	skillRatings  prometheus.Counter
	hardwareLoans *prometheus.CounterVec
	scans         *prometheus.CounterVec
	storeErrors   *prometheus.CounterVec
}

// NewManager creates a metrics manager on its own registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hackathon",
		histogramBuckets: prometheus.DefBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})

	m.personUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "registry",
		Name:      "person_updates_total",
		Help:      "Committed person update transactions",
	})

	m.skillRatings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "registry",
		Name:      "skill_ratings_applied_total",
		Help:      "Skill ratings reconciled by committed person updates",
	})

	m.hardwareLoans = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "hardware",
		Name:      "loan_operations_total",
		Help:      "Hardware checkout and return attempts by outcome",
	}, []string{"operation", "outcome"})

	m.scans = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "events",
		Name:      "scans_total",
		Help:      "Attendance scan attempts by outcome",
	}, []string{"outcome"})

	m.storeErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Unclassified store failures by operation",
	}, []string{"operation"})
}

// Registry returns the registry backing this manager.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one completed HTTP request.
func (m *Manager) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// PersonUpdated records a committed update and how many ratings it applied.
func (m *Manager) PersonUpdated(ratings int) {
	if m == nil {
		return
	}
	m.personUpdates.Inc()
	m.skillRatings.Add(float64(ratings))
}

// HardwareOperation records a checkout or return attempt.
func (m *Manager) HardwareOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.hardwareLoans.WithLabelValues(operation, outcome).Inc()
}

// Scan records an attendance scan attempt.
func (m *Manager) Scan(outcome string) {
	if m == nil {
		return
	}
	m.scans.WithLabelValues(outcome).Inc()
}

// StoreError records an unclassified store failure.
func (m *Manager) StoreError(operation string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(operation).Inc()
}
