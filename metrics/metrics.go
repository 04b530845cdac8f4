package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Signups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tipsybean_signups_total",
		Help: "Number of successful user registrations.",
	})

	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tipsybean_orders_placed_total",
		Help: "Number of orders placed.",
	})

	StatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tipsybean_order_status_updates_total",
		Help: "Number of order status updates, by new status.",
	}, []string{"status"})
)
