package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpPublish = "publish"
	OpImage   = "image"

	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusFailure = "failure"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	articleMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_article_mutations_total",
			Help: "Total number of article mutations by operation and outcome",
		},
		[]string{"op", "status"},
	)

	contactMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_contact_messages_total",
			Help: "Total number of contact form submissions by outcome",
		},
		[]string{"status"},
	)
)

// RecordArticleMutation counts an admin write to an article.
func RecordArticleMutation(op, status string) {
	articleMutationsTotal.WithLabelValues(op, status).Inc()
}

func RecordContactMessage(status string) {
	contactMessagesTotal.WithLabelValues(status).Inc()
}

// Middleware records request count and latency labelled by the route pattern.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unknown"
			}

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			method := c.Request().Method
			httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
