// Package metrics defines and registers the custom Prometheus metrics for
// the CRM API. It is the single source of truth for metric names, labels,
// and help strings. HTTP-level request metrics come from the echoprometheus
// middleware; only business metrics live here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - status: the initial order status (e.g. "draft", "production")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by initial status.",
	},
	[]string{"status"},
)

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntitiesDeletedTotal counts hard deletes across the entity collections.
// Label:
//   - entity: collection name (e.g. "clients", "orders")
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of records deleted, by entity type.",
	},
	[]string{"entity"},
)
