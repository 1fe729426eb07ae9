// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count)
//   - Business metrics (articles, comments, searches, hashtag pruning)
//   - Authentication metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "project-board/internal/observability/metrics"
//
//	func saveArticle() {
//	    // ... persist the article ...
//	    metrics.RecordArticleWrite("save", "applied")
//	}
package metrics
