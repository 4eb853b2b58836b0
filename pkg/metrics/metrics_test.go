package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calendar-attendees/pkg/metrics"
)

func TestObservePage(t *testing.T) {
	m := metrics.New()

	m.ObservePage(metrics.EndpointCalendarList, 3, nil)
	m.ObservePage(metrics.EndpointCalendarList, 2, nil)
	m.ObservePage(metrics.EndpointEventList, 0, errors.New("boom"))

	expected := `
# HELP calendar_attendees_provider_pages_total Paginated provider list calls, by endpoint and outcome.
# TYPE calendar_attendees_provider_pages_total counter
calendar_attendees_provider_pages_total{endpoint="calendar_list",outcome="success"} 2
calendar_attendees_provider_pages_total{endpoint="event_list",outcome="error"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "calendar_attendees_provider_pages_total")
	require.NoError(t, err)

	expectedItems := `
# HELP calendar_attendees_provider_items_total Items returned by paginated provider list calls, by endpoint.
# TYPE calendar_attendees_provider_items_total counter
calendar_attendees_provider_items_total{endpoint="calendar_list"} 5
`
	err = testutil.GatherAndCompare(m.Registry(), strings.NewReader(expectedItems), "calendar_attendees_provider_items_total")
	require.NoError(t, err)
}

func TestObserveRun(t *testing.T) {
	m := metrics.New()

	m.ObserveRun(4, nil)
	m.ObserveRun(0, errors.New("provider down"))

	count, err := testutil.GatherAndCount(m.Registry(), "calendar_attendees_aggregation_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObservePage(metrics.EndpointEventList, 1, nil)
		m.ObserveRun(1, nil)
	})
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRun(1, nil)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "calendar_attendees_aggregation_runs_total")
}
