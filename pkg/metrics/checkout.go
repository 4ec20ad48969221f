package metrics

import "github.com/prometheus/client_golang/prometheus"

// Checkout outcomes.
const (
	CheckoutCompleted  = "completed"
	CheckoutValidation = "validation"
	CheckoutNotFound   = "not_found"
	CheckoutStorage    = "storage"
)

// CheckoutMetrics counts checkout attempts by outcome and tracks placed order totals.
type CheckoutMetrics struct {
	orders *prometheus.CounterVec
	amount prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_orders_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	amount := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_order_amount",
		Help:    "Total amount of completed orders.",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	reg.MustRegister(orders, amount)
	return &CheckoutMetrics{orders: orders, amount: amount}
}

// IncOutcome counts one checkout attempt.
func (c *CheckoutMetrics) IncOutcome(outcome string) {
	if c == nil || c.orders == nil {
		return
	}
	c.orders.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveAmount records the total of a completed order.
func (c *CheckoutMetrics) ObserveAmount(total float64) {
	if c == nil || c.amount == nil {
		return
	}
	c.amount.Observe(total)
}
