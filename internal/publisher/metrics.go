package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	deliveredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "publisher",
		Name:      "events_delivered_total",
		Help:      "Number of registration events delivered to Kafka.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "publisher",
		Name:      "delivery_failures_total",
		Help:      "Number of events in batches that failed delivery.",
	})

	droppedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "publisher",
		Name:      "events_dropped_total",
		Help:      "Number of events dropped, grouped by reason.",
	}, []string{"reason"})

	queueDepthGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "publisher",
		Name:      "queue_depth",
		Help:      "Number of registration events currently staged for delivery.",
	})

	batchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "signup_service",
		Subsystem: "publisher",
		Name:      "batch_duration_seconds",
		Help:      "Time taken to deliver a batch of registration events.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(deliveredCounter, failedCounter, droppedCounter, queueDepthGauge, batchDuration)
}
