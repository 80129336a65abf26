// Package obsmetrics provides Prometheus metrics for gs1decode
package obsmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for gs1decode
type Metrics struct {
	// Decode metrics
	DecodesTotal      *prometheus.CounterVec
	DecodeDuration    *prometheus.HistogramVec
	DecodesInFlight   prometheus.Gauge
	DecodeConfidence  prometheus.Histogram

	// Tokenizer / reconstructor metrics
	ReconstructorInvocationsTotal prometheus.Counter
	ReconstructorCandidatesTotal  prometheus.Histogram
	AmbiguousParsesTotal          prometheus.Counter
	MissingSeparatorTotal         prometheus.Counter
	NoValidParseTotal             prometheus.Counter

	// Validation metrics
	ValidationFailuresTotal *prometheus.CounterVec
	UnknownAITotal          *prometheus.CounterVec

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	m.DecodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1decode_decodes_total",
			Help: "Total number of decode calls",
		},
		[]string{"path", "status"},
	)

	m.DecodeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gs1decode_decode_duration_seconds",
			Help:    "Duration of decode calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	m.DecodesInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gs1decode_decodes_in_flight",
			Help: "Number of decode calls currently being processed",
		},
	)

	m.DecodeConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1decode_decode_confidence",
			Help:    "Distribution of decode confidence scores",
			Buckets: []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, .95, 1},
		},
	)

	m.ReconstructorInvocationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gs1decode_reconstructor_invocations_total",
			Help: "Total number of beam-search reconstructor invocations",
		},
	)

	m.ReconstructorCandidatesTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gs1decode_reconstructor_candidates",
			Help:    "Number of complete candidate parses the beam search produced",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 200},
		},
	)

	m.AmbiguousParsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gs1decode_ambiguous_parses_total",
			Help: "Total number of decodes flagged AMBIGUOUS_PARSE",
		},
	)

	m.MissingSeparatorTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gs1decode_missing_separator_total",
			Help: "Total number of decodes flagged MISSING_SEPARATOR",
		},
	)

	m.NoValidParseTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gs1decode_no_valid_parse_total",
			Help: "Total number of decodes the reconstructor could not resolve at all",
		},
	)

	m.ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1decode_validation_failures_total",
			Help: "Total number of element validation failures by AI",
		},
		[]string{"ai"},
	)

	m.UnknownAITotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gs1decode_unknown_ai_total",
			Help: "Total number of unrecognized AI codes encountered, by the AI prefix seen",
		},
		[]string{"ai"},
	)

	m.ServerUptimeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gs1decode_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordDecode records one decode call's path (fast_path or
// reconstructor) and outcome status.
func (m *Metrics) RecordDecode(path string, status string, duration time.Duration, confidence float64) {
	m.DecodesTotal.WithLabelValues(path, status).Inc()
	m.DecodeDuration.WithLabelValues(path).Observe(duration.Seconds())
	m.DecodeConfidence.Observe(confidence)
}

// RecordReconstructorRun records one beam-search invocation.
func (m *Metrics) RecordReconstructorRun(candidateCount int, ambiguous bool, noValidParse bool) {
	m.ReconstructorInvocationsTotal.Inc()
	m.ReconstructorCandidatesTotal.Observe(float64(candidateCount))
	if ambiguous {
		m.AmbiguousParsesTotal.Inc()
	}
	if noValidParse {
		m.NoValidParseTotal.Inc()
	}
}

// RecordValidationFailure records one element failing validation.
func (m *Metrics) RecordValidationFailure(ai string) {
	m.ValidationFailuresTotal.WithLabelValues(ai).Inc()
}

// RecordUnknownAI records one unrecognized AI code encountered.
func (m *Metrics) RecordUnknownAI(ai string) {
	m.UnknownAITotal.WithLabelValues(ai).Inc()
}
