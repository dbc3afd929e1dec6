// Package metrics defines all custom Prometheus metrics of the freelance
// dashboard. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics register with the default registry on import, which is the one
// served by echoprometheus on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freelance"

// ── View metrics ──────────────────────────────────────────────────────────────

// ViewsServedTotal counts computed views.
// Labels:
//   - view: "dashboard", "time_log", "report", "projects" or "invoices"
//   - role: the resolved scope role, "none" for deny-all
var ViewsServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "views_served_total",
		Help:      "Total number of scoped views computed.",
	},
	[]string{"view", "role"},
)

// ScopeIntegrityErrorsTotal counts client identities with no linked client.
// These are served the empty view.
var ScopeIntegrityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scope_integrity_errors_total",
		Help:      "Total number of requests whose visibility scope could not be resolved.",
	},
	[]string{"view"},
)

// ViewDuration measures loading plus aggregation of a single view.
var ViewDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "view_duration_seconds",
		Help:      "Duration of loading and aggregating a view.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"view"},
)

// ── Write metrics ─────────────────────────────────────────────────────────────

// TimeEntriesRecordedTotal counts appended time entries. Idempotent replays
// are not counted.
var TimeEntriesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_entries_recorded_total",
		Help:      "Total number of time entries recorded.",
	},
)

// WriteRejectionsTotal counts rejected time-entry writes.
// Label:
//   - reason: "forbidden", "validation", "project_not_found" or "in_flight"
var WriteRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "write_rejections_total",
		Help:      "Total number of time-entry writes rejected before persistence.",
	},
	[]string{"reason"},
)
