package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	NotificationsScheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_scheduled_total",
		Help: "Total number of notifications accepted by the scheduler API",
	})

	NotificationsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Total number of notifications delivered to the push gateway",
	})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifications_failed_total",
		Help: "Total number of notifications that ended in failed state",
	})

	DispatchCycleAborted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_cycle_aborted_total",
		Help: "Total number of dispatch cycles aborted before processing (due-set query failed)",
	})

	DispatchCycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_cycle_duration_seconds",
		Help:    "Dispatch cycle duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
	})
)

// Handler exposes the Prometheus registry on a gin route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
