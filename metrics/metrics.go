package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"campus-food-api/models"
)

var (
	OrdersPlacedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusfood_orders_placed_total",
		Help: "Total number of orders successfully placed, by role.",
	},
		[]string{"role"},
	)

	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusfood_order_transitions_total",
		Help: "Total number of order status transitions, by target status and actor.",
	},
		[]string{"to", "actor"},
	)

	OrdersExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusfood_orders_expired_total",
		Help: "Total number of pending orders cancelled by the expiry sweep.",
	})

	FeedbackSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "campusfood_feedback_submitted_total",
		Help: "Total number of feedback entries attached to orders.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusfood_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	PendingOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusfood_pending_orders",
		Help: "Current number of orders waiting in pending status.",
	})

	BadWeather = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusfood_bad_weather",
		Help: "1 while the weather extension is active, 0 otherwise.",
	})
)

func SetBadWeather(isBad bool) {
	if isBad {
		BadWeather.Set(1)
		return
	}
	BadWeather.Set(0)
}

func OrderPlaced(role models.UserRole) {
	OrdersPlacedTotal.WithLabelValues(string(role)).Inc()
}

func OrderTransitioned(to models.OrderStatus, actor string) {
	OrderTransitionsTotal.WithLabelValues(string(to), actor).Inc()
}
