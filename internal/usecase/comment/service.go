// Package comment provides use cases for managing article comments.
// Write paths enforce ownership and absorb stale references as logged
// no-ops, mirroring the article use cases.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"project-board/internal/domain/entity"
	"project-board/internal/observability/metrics"
	"project-board/internal/repository"
	"project-board/internal/usecase/outcome"
)

// SaveInput represents the input parameters for creating a new comment.
type SaveInput struct {
	ArticleID int64
	UserID    string
	Content   string
}

// UpdateInput represents the input parameters for updating a comment's content.
// UserID is the requester; the update is refused when it does not match the
// comment's author.
type UpdateInput struct {
	UserID  string
	Content string
}

// Service provides comment management use cases.
type Service struct {
	Comments repository.ArticleCommentRepository
	Articles repository.ArticleRepository
	Users    repository.UserAccountRepository
	Logger   *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// ListForArticle returns the article's comments oldest-first.
// An article with no comments, or no article at all, yields an empty slice.
func (s *Service) ListForArticle(ctx context.Context, articleID int64) ([]repository.CommentWithAuthor, error) {
	comments, err := s.Comments.ListByArticleID(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Save creates a new comment under the given article. A parent article or
// author that cannot be resolved is absorbed as a logged skip; no comment is
// written and no error reaches the caller.
func (s *Service) Save(ctx context.Context, in SaveInput) (outcome.Outcome, error) {
	if strings.TrimSpace(in.Content) == "" {
		return outcome.SkippedNotFound, &entity.ValidationError{Field: "content", Message: "is required"}
	}

	parent, err := s.Articles.FindByID(ctx, in.ArticleID)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("resolve article: %w", err)
	}
	author, err := s.Users.FindByUserID(ctx, in.UserID)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("resolve author: %w", err)
	}
	if parent == nil || author == nil {
		s.logger().Warn("comment save skipped: article or author does not exist",
			slog.Int64("article_id", in.ArticleID),
			slog.String("user_id", in.UserID))
		metrics.RecordCommentWrite("save", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}

	c := &entity.ArticleComment{
		ArticleID: in.ArticleID,
		UserID:    author.UserID,
		Content:   in.Content,
		Audit:     entity.NewAudit(author.UserID, time.Now()),
	}
	if err := s.Comments.Save(ctx, c); err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("save comment: %w", err)
	}
	metrics.RecordCommentWrite("save", outcome.Applied.String())
	return outcome.Applied, nil
}

// Update mutates a comment's content when the requester is its author and
// the new content is non-blank. Missing comment and ownership mismatch are
// absorbed as logged skips.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (outcome.Outcome, error) {
	existing, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("get comment: %w", err)
	}
	if existing == nil {
		s.logger().Warn("comment update skipped: comment does not exist",
			slog.Int64("comment_id", id))
		metrics.RecordCommentWrite("update", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}
	if existing.UserID != in.UserID {
		s.logger().Warn("comment update skipped: requester is not the author",
			slog.Int64("comment_id", id),
			slog.String("requester", in.UserID))
		metrics.RecordCommentWrite("update", outcome.SkippedUnauthorized.String())
		return outcome.SkippedUnauthorized, nil
	}

	if strings.TrimSpace(in.Content) != "" {
		existing.Content = in.Content
	}
	existing.Touch(in.UserID, time.Now())

	if err := s.Comments.UpdateContent(ctx, existing); err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("update comment: %w", err)
	}
	metrics.RecordCommentWrite("update", outcome.Applied.String())
	return outcome.Applied, nil
}

// Delete removes the comment when the requester is its author; anything else
// is a logged skip.
func (s *Service) Delete(ctx context.Context, id int64, requesterUserID string) (outcome.Outcome, error) {
	deleted, err := s.Comments.DeleteByIDAndUserID(ctx, id, requesterUserID)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("delete comment: %w", err)
	}
	if deleted == 0 {
		s.logger().Warn("comment delete skipped: comment missing or requester is not the author",
			slog.Int64("comment_id", id),
			slog.String("requester", requesterUserID))
		metrics.RecordCommentWrite("delete", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}
	metrics.RecordCommentWrite("delete", outcome.Applied.String())
	return outcome.Applied, nil
}
