package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics groups the collectors registered on its own registry.
type Metrics struct {
	registry     *prometheus.Registry
	fieldChecks  *prometheus.CounterVec
	formChecks   *prometheus.CounterVec
	formErrors   prometheus.Histogram
	formWarnings prometheus.Histogram
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// New creates the collectors under namespace and registers them together
// with the Go runtime and process collectors.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fieldChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_validations_total",
			Help:      "Field validations by field name and outcome.",
		}, []string{"field", "outcome"}),
		formChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_validations_total",
			Help:      "Whole-form validations by outcome.",
		}, []string{"outcome"}),
		formErrors: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "form_validation_errors",
			Help:      "Errors reported per whole-form validation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		}),
		formWarnings: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "form_validation_warnings",
			Help:      "Warnings reported per whole-form validation.",
			Buckets:   []float64{0, 1, 2, 3},
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.fieldChecks,
		m.formChecks,
		m.formErrors,
		m.formWarnings,
		m.requests,
		m.duration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func outcome(valid bool) string {
	if valid {
		return OutcomeValid
	}
	return OutcomeInvalid
}

// ObserveField counts one single-field validation.
func (m *Metrics) ObserveField(field string, valid bool) {
	m.fieldChecks.WithLabelValues(field, outcome(valid)).Inc()
}

// ObserveForm counts one whole-form validation with its error and warning
// totals.
func (m *Metrics) ObserveForm(valid bool, errors, warnings int) {
	m.formChecks.WithLabelValues(outcome(valid)).Inc()
	m.formErrors.Observe(float64(errors))
	m.formWarnings.Observe(float64(warnings))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency labelled with the chi route
// pattern, so /fields/{field} is one series regardless of the field.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
