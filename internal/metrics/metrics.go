// Package metrics exposes Prometheus instrumentation for the question pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catalogqa"

// Metrics contains the pipeline metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	QuestionsTotal     *prometheus.CounterVec
	QuestionDuration   *prometheus.HistogramVec
	StageDuration      *prometheus.HistogramVec
	RetrievedRecords   prometheus.Histogram
	GenerationFailures prometheus.Counter
}

// NewMetrics creates the pipeline metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QuestionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "questions",
				Name:      "total",
				Help:      "Questions answered, by route and outcome",
			},
			[]string{"route", "status"},
		),

		QuestionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "questions",
				Name:      "duration_seconds",
				Help:      "End-to-end question latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "pipeline",
				Name:      "stage_duration_seconds",
				Help:      "Latency of external pipeline stages in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"stage"},
		),

		RetrievedRecords: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "retrieval",
				Name:      "records",
				Help:      "Number of graph records retrieved per semantic question",
				Buckets:   []float64{0, 1, 2, 5, 10, 20},
			},
		),

		GenerationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generation",
				Name:      "failures_total",
				Help:      "Generation calls that ended in an error message",
			},
		),
	}

	reg.MustRegister(
		m.QuestionsTotal,
		m.QuestionDuration,
		m.StageDuration,
		m.RetrievedRecords,
		m.GenerationFailures,
	)

	return m
}

// ObserveQuestion records one answered (or failed) question
func (m *Metrics) ObserveQuestion(route string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QuestionsTotal.WithLabelValues(route, status).Inc()
	m.QuestionDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveStage records the latency of one pipeline stage
func (m *Metrics) ObserveStage(stage string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveRetrieved records how many records the graph store returned
func (m *Metrics) ObserveRetrieved(n int) {
	if m == nil {
		return
	}
	m.RetrievedRecords.Observe(float64(n))
}

// IncGenerationFailure counts a generation call that failed
func (m *Metrics) IncGenerationFailure() {
	if m == nil {
		return
	}
	m.GenerationFailures.Inc()
}
