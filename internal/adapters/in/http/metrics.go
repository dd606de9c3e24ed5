package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "delivery"

// RequestsTotal counts handled HTTP requests.
// Labels:
//   - method: HTTP method
//   - path: the registered route pattern, not the raw URL
//   - status: numeric response status
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled, by route and status.",
	},
	[]string{"method", "path", "status"},
)

// PackagesCreatedTotal counts packages that entered escrow.
var PackagesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "packages_created_total",
		Help:      "Total number of packages created with escrow held.",
	},
)

// DeliveriesCompletedTotal counts confirmed deliveries with escrow released.
var DeliveriesCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "deliveries_completed_total",
		Help:      "Total number of deliveries confirmed by the recipient side.",
	},
)

// DisputesFiledTotal counts disputes that froze a package.
var DisputesFiledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "disputes_filed_total",
		Help:      "Total number of disputes filed against packages.",
	},
)

// Metrics is an echo middleware recording per-route request counts. Errors
// run through the same status mapping as the central error handler, since
// the response status is not committed yet when the middleware unwinds.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if code, known := statusForError(err); known {
					status = code
				}
			}
			RequestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()

			return err
		}
	}
}
