package entity

// ArticleComment represents a comment attached to an article.
// ArticleID identifies the parent post and is immutable after creation;
// the comment's lifetime is bound to the parent (deleted with it).
type ArticleComment struct {
	ID        int64
	ArticleID int64
	UserID    string
	Content   string
	Audit
}
