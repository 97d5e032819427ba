// Package metrics defines and registers all custom Prometheus metrics for the
// user graph API and worker. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry through
// promauto when the package is loaded.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_graph"

// ── Friendship metrics ───────────────────────────────────────────────────────

// FriendshipTransitionsTotal counts successful state machine transitions.
// Label:
//   - action: "request", "accept", "decline", "block" or "unblock"
var FriendshipTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friendship_transitions_total",
		Help:      "Total number of friendship state transitions, by action.",
	},
	[]string{"action"},
)

// FriendshipRejectionsTotal counts transitions refused by the core.
// Label:
//   - reason: "invalid_transition", "blocked", "duplicate", "conflict", "not_found", "bad_request"
var FriendshipRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "friendship_rejections_total",
		Help:      "Total number of refused friendship requests or actions.",
	},
	[]string{"reason"},
)

// ── Nearby metrics ───────────────────────────────────────────────────────────

// NearbySearchesTotal counts nearby searches.
// Label:
//   - scope: "users" or "friends"
var NearbySearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nearby_searches_total",
		Help:      "Total number of nearby searches, by scope.",
	},
	[]string{"scope"},
)

// NearbyResultSize observes the number of matches of a nearby search
// before pagination.
var NearbyResultSize = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "nearby_result_size",
		Help:      "Number of users matched by a nearby search before pagination.",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
	},
	[]string{"scope"},
)

// ── Account metrics ──────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Task metrics ─────────────────────────────────────────────────────────────

// TasksProcessedTotal counts tasks the worker handled successfully.
var TasksProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_processed_total",
		Help:      "Total number of background tasks successfully processed.",
	},
	[]string{"type"},
)

// TasksErrorsTotal counts tasks that failed processing.
var TasksErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_errors_total",
		Help:      "Total number of background tasks that failed processing.",
	},
	[]string{"type"},
)

// TasksDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new task, processed)
var TasksDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_dedup_total",
		Help:      "Total number of task deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// TasksQueueDepth tracks the number of tasks waiting in each worker channel.
var TasksQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tasks_queue_depth",
		Help:      "Current number of tasks pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// TaskProcessingDuration measures how long a single task takes to process.
var TaskProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "task_processing_duration_seconds",
		Help:      "Duration of background task processing from dequeue to completion.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"type"},
)
