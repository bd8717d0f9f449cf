// Package metrics defines and registers all custom Prometheus metrics for the
// Fast Bites API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fastbites"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokenVerificationsTotal counts bearer-token verification outcomes.
// Label:
//   - result: "ok", "expired", "bad_issuer", "malformed"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer-token verifications, by result.",
	},
	[]string{"result"},
)

// ── Profile metrics ───────────────────────────────────────────────────────────

// ProfileOperationsTotal counts profile service operations.
// Labels:
//   - operation: "create", "get", "update", "delete"
//   - outcome: "ok", "conflict", "not_found", "invalid", "error"
var ProfileOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_operations_total",
		Help:      "Total number of profile operations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogQueriesTotal counts catalog read queries.
// Label:
//   - query: "list_restaurants", "get_restaurant", "list_items", "get_item"
var CatalogQueriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_queries_total",
		Help:      "Total number of catalog read queries, by query kind.",
	},
	[]string{"query"},
)
