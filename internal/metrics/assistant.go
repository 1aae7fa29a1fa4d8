package metrics

import "github.com/prometheus/client_golang/prometheus"

// Assistant extraction Prometheus metrics.
var (
	ExtractionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "extraction_requests_total",
			Help:      "Total number of intent extraction requests",
		},
		[]string{"model", "status"},
	)

	ExtractionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advisor",
			Name:      "extraction_request_duration_seconds",
			Help:      "Intent extraction request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"model"},
	)

	ExtractionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "extraction_errors_total",
			Help:      "Total intent extraction errors",
		},
		[]string{"model", "error_type"},
	)

	ExtractionFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "extraction_fallbacks_total",
			Help:      "Requests served by rule-based parsing after assistant failure",
		},
	)

	ExtractionTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advisor",
			Name:      "extraction_tokens_total",
			Help:      "Total extraction tokens consumed",
		},
		[]string{"model", "type"},
	)
)

var assistantMetricsRegistered bool

// RegisterAssistantMetrics registers Prometheus assistant metrics. Must be called once from main.
func RegisterAssistantMetrics() {
	if assistantMetricsRegistered {
		return
	}
	prometheus.MustRegister(ExtractionRequestsTotal)
	prometheus.MustRegister(ExtractionRequestDuration)
	prometheus.MustRegister(ExtractionErrorsTotal)
	prometheus.MustRegister(ExtractionFallbacksTotal)
	prometheus.MustRegister(ExtractionTokensTotal)
	assistantMetricsRegistered = true
}
