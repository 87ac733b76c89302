package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// WebhookEventsTotal counts deposit webhooks by outcome
	// (invalid, ignored, unknown_wallet, dispatched).
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trc20bot",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Total deposit webhook events by outcome",
	}, []string{"outcome"})

	// NotificationsTotal counts notification attempts per channel and status.
	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trc20bot",
		Subsystem: "notificator",
		Name:      "notifications_total",
		Help:      "Total notification attempts by channel and status",
	}, []string{"channel", "status"})

	NotificationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trc20bot",
		Subsystem: "notificator",
		Name:      "send_duration_seconds",
		Help:      "Notification send duration per channel",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	}, []string{"channel"})

	// RegistryOperationsTotal counts wallet registry writes by result.
	RegistryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trc20bot",
		Subsystem: "registry",
		Name:      "operations_total",
		Help:      "Total wallet registry write operations by result",
	}, []string{"operation", "result"})
)
