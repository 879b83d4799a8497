package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/metrics"
)

func TestObserveField(t *testing.T) {
	t.Parallel()
	m := metrics.New("visakit")

	m.ObserveField("postalCode", true)
	m.ObserveField("postalCode", false)
	m.ObserveField("postalCode", false)
	m.ObserveField("email", true)

	expected := `
# HELP visakit_field_validations_total Field validations by field name and outcome.
# TYPE visakit_field_validations_total counter
visakit_field_validations_total{field="email",outcome="valid"} 1
visakit_field_validations_total{field="postalCode",outcome="invalid"} 2
visakit_field_validations_total{field="postalCode",outcome="valid"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "visakit_field_validations_total"))
}

func TestObserveForm(t *testing.T) {
	t.Parallel()
	m := metrics.New("visakit")

	m.ObserveForm(true, 0, 1)
	m.ObserveForm(false, 3, 0)

	count, err := testutil.GatherAndCount(m.Registry(), "visakit_form_validations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "visakit_form_validation_errors")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	m := metrics.New("visakit")

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/fields/{field}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", m.Handler())

	for _, path := range []string{"/fields/email", "/fields/sex", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP visakit_http_requests_total HTTP requests by route pattern, method and status code.
# TYPE visakit_http_requests_total counter
visakit_http_requests_total{method="GET",route="/fields/{field}",status="204"} 2
visakit_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "visakit_http_requests_total"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "visakit_http_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
