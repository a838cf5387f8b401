package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgive_requests_total",
			Help: "Total number of requests processed by the give server.",
		},
		[]string{"path", "status"},
	)

	ErrorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgive_requests_errors_total",
			Help: "Total number of error requests processed by the give server.",
		},
		[]string{"path", "status"},
	)

	PaymentCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confgive_payments_total",
			Help: "Payment attempts by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
)

// PrometheusInit registers the metric collectors.
func PrometheusInit() {
	prometheus.MustRegister(RequestCount)
	prometheus.MustRegister(ErrorCount)
	prometheus.MustRegister(PaymentCount)
}

// TrackMetrics counts requests and errors per path.
func TrackMetrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		err := c.Next()
		status := c.Response().StatusCode()

		RequestCount.WithLabelValues(path, http.StatusText(status)).Inc()

		if status >= 400 {
			ErrorCount.WithLabelValues(path, http.StatusText(status)).Inc()
		}

		return err
	}
}
