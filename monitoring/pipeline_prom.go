package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var GenerationAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_generation_attempts_total",
	Help: "The total number of generation attempts by outcome",
}, []string{"outcome"})

var GenerationAttemptDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "fixflow_generation_attempt_duration_seconds",
	Help:    "Duration of a generation attempt including the error handling path",
	Buckets: prometheus.DefBuckets,
})

var DiagnosisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_diagnosis_total",
	Help: "The total number of diagnoses by category and severity",
}, []string{"category", "severity"})

var DiagnosisFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fixflow_diagnosis_fallback_total",
	Help: "The total number of diagnoses that fell back to the default classification",
})

var FixGenerationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_fix_generation_total",
	Help: "The total number of fix generation runs by result (skipped, failed, generated)",
}, []string{"result"})

var ProposedFixesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_proposed_fixes_created_total",
	Help: "The total number of persisted fixes by initial status",
}, []string{"status"})

var FixExecutionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_fix_execution_total",
	Help: "The total number of fix executions by fix type and result",
}, []string{"fix_type", "result"})

var FixReviewTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "fixflow_fix_review_total",
	Help: "The total number of review decisions by action and result",
}, []string{"action", "result"})

var EscalationDaemonDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "fixflow_daemon_escalation_duration_seconds",
	Help:    "Duration of a single escalation daemon run in seconds",
	Buckets: prometheus.DefBuckets,
})

var EscalatedFixesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "fixflow_escalated_fixes_total",
	Help: "The total number of pending fixes escalated for manual attention",
})
