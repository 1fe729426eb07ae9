// Package entity defines the core domain entities and validation logic for the board.
// It contains the fundamental business objects such as Article, ArticleComment and
// UserAccount, along with their validation rules and domain-specific errors.
package entity

// Article represents a board post written by a user account.
// UserID identifies the author and is immutable after creation.
// Hashtags carries the normalized, deduplicated tag set associated with the post.
type Article struct {
	ID       int64
	UserID   string
	Title    string
	Content  string
	Hashtags []string
	Audit
}

// HasHashtag reports whether the article carries the given tag.
func (a *Article) HasHashtag(tag string) bool {
	for _, h := range a.Hashtags {
		if h == tag {
			return true
		}
	}
	return false
}
