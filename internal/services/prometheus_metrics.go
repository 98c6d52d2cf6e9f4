package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	pipelineRuns    *prometheus.CounterVec
	pipelineFailed  *prometheus.CounterVec
	stageDuration   *prometheus.HistogramVec
	expensesPerRun  prometheus.Histogram
	searchRequests  *prometheus.CounterVec
	llmRequests     *prometheus.CounterVec
	sandboxFallback prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		pipelineRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_pipeline_runs_total",
				Help: "Total number of completed pipeline runs by budget status",
			},
			[]string{"budget_status"},
		),
		pipelineFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_pipeline_failures_total",
				Help: "Total number of failed pipeline runs by reason",
			},
			[]string{"reason"},
		),
		stageDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "analysis_stage_duration_milliseconds",
				Help:    "Pipeline stage duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"stage"},
		),
		expensesPerRun: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_expenses_per_run",
				Help:    "Number of expenses processed per pipeline run",
				Buckets: prometheus.LinearBuckets(1, 5, 10),
			},
		),
		searchRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "price_search_requests_total",
				Help: "Total number of price research lookups",
			},
			[]string{"status"},
		),
		llmRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "llm_requests_total",
				Help: "Total number of language model requests",
			},
			[]string{"task", "status"},
		),
		sandboxFallback: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sandbox_fallback_total",
				Help: "Total number of aggregations that fell back to the in-process path",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "pipeline.completed":
		m.pipelineRuns.WithLabelValues(tags["budget_status"]).Inc()
	case "pipeline.failed":
		m.pipelineFailed.WithLabelValues(tags["reason"]).Inc()
	case "search.request":
		if status := tags["status"]; status != "" {
			m.searchRequests.WithLabelValues(status).Inc()
		}
	case "llm.request":
		m.llmRequests.WithLabelValues(tags["task"], tags["status"]).Inc()
	case "sandbox.fallback":
		m.sandboxFallback.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if stage, ok := stageFromMetric(name); ok {
		m.stageDuration.WithLabelValues(stage).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "pipeline.expenses" {
		m.expensesPerRun.Observe(value)
	}
}

func stageFromMetric(name string) (string, bool) {
	const prefix = "pipeline.stage."
	if len(name) > len(prefix) && name[:len(prefix)] == prefix {
		return name[len(prefix):], true
	}
	return "", false
}
