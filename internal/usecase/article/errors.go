// Package article provides use cases for managing board articles.
// It implements search dispatch, retrieval, creation, update and deletion,
// including ownership enforcement and hashtag association upkeep, and
// delegates persistence to the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrUnknownSearchKind indicates that the search kind is not one of the
	// supported variants.
	ErrUnknownSearchKind = errors.New("unknown search kind")
)
