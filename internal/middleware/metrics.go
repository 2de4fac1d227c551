package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prolink_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prolink_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ReactionsProcessed counts reaction submissions by requested status and outcome.
	ReactionsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prolink_reactions_processed_total",
		Help: "Total number of reaction submissions by status and outcome",
	}, []string{"status", "outcome"})

	// FeedPagesServed counts feed pages served.
	FeedPagesServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prolink_feed_pages_served_total",
		Help: "Total number of feed pages served",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
