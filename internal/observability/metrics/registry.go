// Package metrics provides centralized Prometheus metrics for the board.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track board-specific operations
var (
	// ArticlesTotal tracks the total number of articles in the database
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_articles_total",
			Help: "Total number of articles in the database",
		},
	)

	// ArticleWritesTotal counts article write operations by operation and outcome
	ArticleWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_article_writes_total",
			Help: "Article write operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// CommentWritesTotal counts comment write operations by operation and outcome
	CommentWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_comment_writes_total",
			Help: "Comment write operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// ArticleSearchesTotal counts article searches by search kind
	ArticleSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_article_searches_total",
			Help: "Article search requests by search kind",
		},
		[]string{"kind"},
	)

	// HashtagsPrunedTotal counts hashtags removed by orphan cleanup
	HashtagsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "board_hashtags_pruned_total",
			Help: "Hashtags removed because no article references them",
		},
	)

	// AuthRequestsTotal counts authentication attempts by result
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_auth_requests_total",
			Help: "Authentication attempts by result",
		},
		[]string{"result"},
	)
)
