package middleware

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Middleware instruments handlers with per-route request count, duration
// and in-flight metrics.
type Middleware struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight *prometheus.GaugeVec
}

// New registers the instrumentation collectors on reg. Nil buckets fall back
// to prometheus.DefBuckets.
func New(reg prometheus.Registerer, buckets []float64) *Middleware {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	m := &Middleware{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Tracks the number of HTTP requests.",
		}, []string{"handler", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Tracks the latencies for HTTP requests.",
			Buckets: buckets,
		}, []string{"handler", "method", "code"}),
		inFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Tracks the number of HTTP requests in flight.",
		}, []string{"handler"}),
	}
	reg.MustRegister(m.requests, m.duration, m.inFlight)

	return m
}

// WrapHandler instruments handler under the given route name.
func (m *Middleware) WrapHandler(handlerName string, handler http.Handler) http.HandlerFunc {
	labels := prometheus.Labels{"handler": handlerName}
	instrumented := promhttp.InstrumentHandlerInFlight(
		m.inFlight.With(labels),
		promhttp.InstrumentHandlerCounter(
			m.requests.MustCurryWith(labels),
			promhttp.InstrumentHandlerDuration(
				m.duration.MustCurryWith(labels),
				handler,
			),
		),
	)
	return instrumented.ServeHTTP
}
