package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes recorded by FeedMetrics.ObserveFetch.
const (
	OutcomeOK         = "ok"
	OutcomeFetchError = "fetch_error"
	OutcomeInvalid    = "invalid"
)

// Parse error kinds recorded by FeedMetrics.ObserveParseError.
const (
	KindRate = "rate"
	KindTime = "time"
)

// FeedMetrics holds the collectors of the price feed pipeline. A nil
// *FeedMetrics is valid and records nothing.
type FeedMetrics struct {
	fetches     *prometheus.CounterVec
	estimated   prometheus.Gauge
	parseErrors *prometheus.CounterVec
}

// NewFeedMetrics creates the pipeline collectors and registers them with reg.
func NewFeedMetrics(reg prometheus.Registerer) *FeedMetrics {
	m := &FeedMetrics{
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "price_feed",
				Name:      "fetch_total",
				Help:      "Upstream price index fetches by outcome.",
			},
			[]string{"outcome"},
		),
		estimated: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "price_feed",
				Name:      "estimated_currencies",
				Help:      "Currencies back-filled with estimated rates in the last transformed feed.",
			},
		),
		parseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "price_feed",
				Name:      "parse_errors_total",
				Help:      "Recovered rate and timestamp parse failures.",
			},
			[]string{"kind"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.fetches, m.estimated, m.parseErrors)
	}
	return m
}

// ObserveFetch counts one fetch with the given outcome.
func (m *FeedMetrics) ObserveFetch(outcome string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(outcome).Inc()
}

// SetEstimated records how many currencies the last run back-filled.
func (m *FeedMetrics) SetEstimated(n int) {
	if m == nil {
		return
	}
	m.estimated.Set(float64(n))
}

// ObserveParseError counts a recovered parse failure of the given kind.
func (m *FeedMetrics) ObserveParseError(kind string) {
	if m == nil {
		return
	}
	m.parseErrors.WithLabelValues(kind).Inc()
}

// Handler exposes the collectors gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
