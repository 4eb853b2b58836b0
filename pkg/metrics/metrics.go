package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "calendar_attendees"

	OutcomeSuccess = "success"
	OutcomeError   = "error"

	EndpointCalendarList = "calendar_list"
	EndpointEventList    = "event_list"
)

// Metrics holds the Prometheus collectors for provider pagination and
// aggregation runs. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	providerPages   *prometheus.CounterVec
	providerItems   *prometheus.CounterVec
	aggregationRuns *prometheus.CounterVec
	uniqueAttendees prometheus.Histogram
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		providerPages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_pages_total",
			Help:      "Paginated provider list calls, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		providerItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_items_total",
			Help:      "Items returned by paginated provider list calls, by endpoint.",
		}, []string{"endpoint"}),
		aggregationRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aggregation_runs_total",
			Help:      "Aggregation runs, by outcome.",
		}, []string{"outcome"}),
		uniqueAttendees: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "unique_attendees",
			Help:      "Unique attendees produced per successful aggregation run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// ObservePage records one provider page call.
func (m *Metrics) ObservePage(endpoint string, items int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.providerPages.WithLabelValues(endpoint, OutcomeError).Inc()
		return
	}
	m.providerPages.WithLabelValues(endpoint, OutcomeSuccess).Inc()
	m.providerItems.WithLabelValues(endpoint).Add(float64(items))
}

// ObserveRun records the outcome of one aggregation run.
func (m *Metrics) ObserveRun(attendees int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.aggregationRuns.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.aggregationRuns.WithLabelValues(OutcomeSuccess).Inc()
	m.uniqueAttendees.Observe(float64(attendees))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
