// Package metrics holds the Prometheus collectors exposed at /metrics.
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

const namespace = "teamhub"

// Team events recorded by RecordTeamEvent.
const (
	EventTeamCreated       = "team_created"
	EventTeamUpdated       = "team_updated"
	EventInvitationSent    = "invitation_sent"
	EventInvitationDeleted = "invitation_deleted"
	EventMemberAdded       = "member_added"
	EventMemberRemoved     = "member_removed"
	EventMemberUpdated     = "member_updated"
	EventTeamSwitched      = "team_switched"
)

// Auth events and providers recorded by RecordAuthEvent.
const (
	EventRegistered     = "registered"
	EventLoginSuccess   = "login_success"
	EventLoginFailed    = "login_failed"
	EventPasswordReset  = "password_reset"
	EventResetRequested = "reset_requested"

	ProviderPassword   = "password"
	ProviderGoogle     = "google"
	ProviderInvitation = "invitation"
)

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	AuthzChecksTotal *prometheus.CounterVec
	TeamEventsTotal  *prometheus.CounterVec
	MailDeliveries   *prometheus.CounterVec
	AuthEventsTotal  *prometheus.CounterVec
}

// New creates a Metrics instance registered on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),

		AuthzChecksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "authz",
				Name:      "checks_total",
				Help:      "Total number of team permission and role checks",
			},
			[]string{"check", "result"}, // result: allowed, denied
		),
		TeamEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "team",
				Name:      "events_total",
				Help:      "Total number of team lifecycle events",
			},
			[]string{"event"},
		),
		MailDeliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mail",
				Name:      "deliveries_total",
				Help:      "Total number of mail delivery attempts by outcome",
			},
			[]string{"kind", "status"},
		),
		AuthEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "events_total",
				Help:      "Total number of auth events",
			},
			[]string{"event", "provider"}, // event: register, login_success, login_failed, password_reset
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveAuthzCheck records a permission or role check. Its signature matches
// authz.CheckObserver.
func (m *Metrics) ObserveAuthzCheck(check string, allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	m.AuthzChecksTotal.WithLabelValues(check, result).Inc()
}

// RecordTeamEvent counts a team lifecycle event.
func (m *Metrics) RecordTeamEvent(event string) {
	m.TeamEventsTotal.WithLabelValues(event).Inc()
}

// ObserveMailDelivery records a delivery outcome. Its signature matches
// queue.DeliveryObserver.
func (m *Metrics) ObserveMailDelivery(kind, status string) {
	m.MailDeliveries.WithLabelValues(kind, status).Inc()
}

// RecordAuthEvent records an auth event.
func (m *Metrics) RecordAuthEvent(event, provider string) {
	m.AuthEventsTotal.WithLabelValues(event, provider).Inc()
}
