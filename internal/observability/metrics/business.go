package metrics

// RecordArticleWrite records the result of an article write operation.
// Operation is one of "save", "update", "delete"; outcome is the tagged
// write outcome label (applied / skipped_not_found / skipped_unauthorized).
func RecordArticleWrite(operation, outcome string) {
	ArticleWritesTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordCommentWrite records the result of a comment write operation.
func RecordCommentWrite(operation, outcome string) {
	CommentWritesTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordArticleSearch records an article search by kind.
// Kind is the search kind label, or "none" for unfiltered listings.
func RecordArticleSearch(kind string) {
	if kind == "" {
		kind = "none"
	}
	ArticleSearchesTotal.WithLabelValues(kind).Inc()
}

// RecordHashtagsPruned records hashtags removed by orphan cleanup.
func RecordHashtagsPruned(count int64) {
	if count <= 0 {
		return
	}
	HashtagsPrunedTotal.Add(float64(count))
}

// RecordAuthRequest records an authentication attempt.
// Result should be either "success" or "failure".
func RecordAuthRequest(result string) {
	AuthRequestsTotal.WithLabelValues(result).Inc()
}

// UpdateArticlesTotal updates the total count of articles in the database.
// This gauge should be updated periodically to reflect the current state.
func UpdateArticlesTotal(count int64) {
	ArticlesTotal.Set(float64(count))
}
