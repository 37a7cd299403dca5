// Package metrics defines and registers all custom Prometheus metrics for the
// symptom tracker API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed through the /metrics endpoint mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "symptom_tracker"

// RecordsCreatedTotal counts documents written per collection.
// Label:
//   - collection: "users", "symptoms", or "medications"
var RecordsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_created_total",
		Help:      "Total number of documents created, by collection.",
	},
	[]string{"collection"},
)

// ReportsGeneratedTotal counts narrative reports that completed successfully.
// Label:
//   - format: the requested report format ("summary", "detailed", ...)
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of narrative reports generated, by requested format.",
	},
	[]string{"format"},
)

// ReportErrorsTotal counts report requests that failed.
// Label:
//   - reason: "invalid_id", "no_data", "store", or "generation"
var ReportErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_errors_total",
		Help:      "Total number of failed report requests, by reason.",
	},
	[]string{"reason"},
)

// NarrativeRequestDuration measures the latency of a single external
// text-completion call. The upstream call routinely takes seconds, hence the
// wide buckets.
var NarrativeRequestDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "narrative_request_duration_seconds",
		Help:      "Duration of narrative generation calls to the text-completion service.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
	},
)
