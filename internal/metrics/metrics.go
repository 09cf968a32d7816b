// Package metrics exposes Prometheus counters and gauges for the laundry
// tracking service. Metrics are registered once at package init via promauto
// and served from the /metrics endpoint of the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_orders_completed_total",
		Help: "Total number of orders moved to the completed status.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "laundrytrack_status_transitions_total",
		Help: "Total number of committed order status transitions.",
	},
		[]string{"status"},
	)

	TagsAcquiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_tags_acquired_total",
		Help: "Total number of NFC tags handed out by the pool.",
	})

	TagsReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_tags_released_total",
		Help: "Total number of NFC tags returned to the pool.",
	})

	TagPoolAvailable = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "laundrytrack_tag_pool_available",
		Help: "Current number of NFC tags available for allocation.",
	})

	TagReleaseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_tag_release_failures_total",
		Help: "Total number of completed orders whose tag release step failed.",
	})

	EventPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "laundrytrack_event_publish_failures_total",
		Help: "Total number of order events that could not be published.",
	})
)
