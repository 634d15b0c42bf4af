package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CheckoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "Total de links de pagamento solicitados",
		},
		[]string{"result"},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Total de notificações de pagamento processadas",
		},
		[]string{"outcome"},
	)

	DeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deliveries_total",
			Help: "Total de entregas por produto",
		},
		[]string{"product"},
	)

	DeliveredAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivered_amounts",
			Help:    "Distribuição dos valores pagos em pedidos entregues",
			Buckets: prometheus.LinearBuckets(0, 10, 20),
		},
		[]string{"product"},
	)

	registerOnce sync.Once
)

// RegisterMetrics registers the relay collectors on the default registry.
// Calling it more than once is a no-op.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CheckoutsTotal,
			NotificationsTotal,
			DeliveriesTotal,
			DeliveredAmounts,
		)
	})
}
