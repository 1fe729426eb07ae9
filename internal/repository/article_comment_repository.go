package repository

import (
	"context"

	"project-board/internal/domain/entity"
)

// CommentWithAuthor pairs a comment with its author's display data.
type CommentWithAuthor struct {
	Comment *entity.ArticleComment
	Author  *entity.UserAccount
}

type ArticleCommentRepository interface {
	// ListByArticleID returns the article's comments oldest-first.
	// A missing article yields an empty slice, not an error.
	ListByArticleID(ctx context.Context, articleID int64) ([]CommentWithAuthor, error)
	// FindByID returns the comment or nil when absent.
	FindByID(ctx context.Context, id int64) (*entity.ArticleComment, error)
	// Save persists a new comment and assigns its ID. A dangling article or
	// author reference surfaces as a store constraint error.
	Save(ctx context.Context, comment *entity.ArticleComment) error
	// UpdateContent mutates the comment's content and audit fields.
	UpdateContent(ctx context.Context, comment *entity.ArticleComment) error
	// DeleteByIDAndUserID removes the comment only when userID matches the
	// author. Returns the number of comments deleted (0 or 1).
	DeleteByIDAndUserID(ctx context.Context, id int64, userID string) (int64, error)
	// CountByArticleID returns the number of comments on an article.
	CountByArticleID(ctx context.Context, articleID int64) (int64, error)
}
