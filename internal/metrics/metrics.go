// Package metrics exposes prometheus collectors for sales and HTTP traffic.
// All methods are safe to call on a nil *Metrics.
package metrics

import (
	"strconv"
	"time"

	"go-pharmacy-pos/internal/model"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pharmacy"

// Default histogram buckets for request latency (in seconds).
var defaultBuckets = []float64{
	.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5,
}

type Metrics struct {
	salesTotal    *prometheus.CounterVec
	salesRejected *prometheus.CounterVec
	revenue       prometheus.Counter
	itemsSold     prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		salesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_total",
			Help:      "Committed sales by payment method.",
		}, []string{"payment_method"}),
		salesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_rejected_total",
			Help:      "Sales rejected before commit, by reason.",
		}, []string{"reason"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_revenue_total",
			Help:      "Sum of committed sale totals.",
		}),
		itemsSold: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_sold_total",
			Help:      "Units of medicine sold.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   defaultBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.salesTotal,
		m.salesRejected,
		m.revenue,
		m.itemsSold,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

func (m *Metrics) ObserveSale(sale *model.SaleWithItems) {
	if m == nil {
		return
	}
	m.salesTotal.WithLabelValues(string(sale.PaymentMethod)).Inc()
	m.revenue.Add(sale.Total.InexactFloat64())

	units := 0
	for _, item := range sale.Items {
		units += item.Quantity
	}
	m.itemsSold.Add(float64(units))
}

func (m *Metrics) ObserveRejectedSale(reason string) {
	if m == nil {
		return
	}
	m.salesRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
