// Package observability provides Prometheus metrics for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts entity store mutations by entity kind and operation.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_store_operations_total",
		Help: "Total number of entity store mutations by entity and operation",
	}, []string{"entity", "operation"})

	// FeedAssemblyDuration records feed assembly latency per request.
	FeedAssemblyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ripple_feed_assembly_seconds",
		Help:    "Feed assembly latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// FeedPostsReturned records how many posts each assembled feed contained.
	FeedPostsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ripple_feed_posts_returned",
		Help:    "Number of posts returned per feed assembly",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
	})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ConsistencyFaults counts invariant violations surfaced by the resolver.
	ConsistencyFaults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_consistency_faults_total",
		Help: "Total number of consistency faults detected during resolution",
	})
)
