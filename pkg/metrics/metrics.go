package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerMetrics holds the Prometheus collectors for the API server.
type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec

	// Checkout pipeline counters
	CheckoutsTotal    *prometheus.CounterVec
	CheckoutRevenue   prometheus.Counter
	StockShortfalls   *prometheus.CounterVec
	LoyaltyRedeemed   prometheus.Counter
	ReceiptsPrinted   prometheus.Counter
	ReceiptPrintFails prometheus.Counter
}

// NewServerMetrics registers and returns the server's metric collectors.
func NewServerMetrics(service string) *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})

	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "checkouts_total",
		Help:      "Completed and rejected checkout attempts by result.",
	}, []string{"result"})
	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "checkout_revenue_cents_total",
		Help:      "Cumulative revenue from committed checkouts, in cents.",
	})
	shortfalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "stock_shortfalls_total",
		Help:      "Checkouts rejected for insufficient ingredient stock.",
	}, []string{"ingredient"})
	redeemed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "loyalty_redemptions_total",
		Help:      "Checkouts that redeemed loyalty points.",
	})
	printed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "receipts_printed_total",
		Help:      "Receipts successfully sent to the thermal printer.",
	})
	printFails := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pos",
		Subsystem: service,
		Name:      "receipt_print_failures_total",
		Help:      "Receipt print jobs that failed.",
	})

	prometheus.MustRegister(requests, latency, checkouts, revenue, shortfalls, redeemed, printed, printFails)
	return &ServerMetrics{
		Requests:          requests,
		LatencyMS:         latency,
		CheckoutsTotal:    checkouts,
		CheckoutRevenue:   revenue,
		StockShortfalls:   shortfalls,
		LoyaltyRedeemed:   redeemed,
		ReceiptsPrinted:   printed,
		ReceiptPrintFails: printFails,
	}
}

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
