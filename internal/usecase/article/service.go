package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"project-board/internal/common/hashtag"
	"project-board/internal/common/pagination"
	"project-board/internal/domain/entity"
	"project-board/internal/observability/metrics"
	"project-board/internal/repository"
	"project-board/internal/usecase/outcome"
)

// SaveInput represents the input parameters for creating a new article.
// UserID is the authenticated author; HashtagText is an optional free-form
// string whose tags are merged with those extracted from the content.
type SaveInput struct {
	UserID      string
	Title       string
	Content     string
	HashtagText string
}

// UpdateInput represents the input parameters for updating an existing article.
// UserID is the requester; the update is refused when it does not match the
// article's author. Blank Title/Content leave the stored value untouched.
type UpdateInput struct {
	UserID      string
	Title       string
	Content     string
	HashtagText string
}

// Service provides article management use cases.
// It handles search dispatch, ownership enforcement and hashtag association,
// and delegates persistence to the repositories.
type Service struct {
	Articles repository.ArticleRepository
	Comments repository.ArticleCommentRepository
	Users    repository.UserAccountRepository
	Logger   *slog.Logger
}

// PaginatedResult represents the result of a paginated article query.
// It contains both the data and pagination metadata.
type PaginatedResult struct {
	Data       []repository.ArticleWithAuthor
	Pagination pagination.Metadata
}

// ArticleWithComments bundles an article with its ordered comment list.
type ArticleWithComments struct {
	Article  repository.ArticleWithAuthor
	Comments []repository.CommentWithAuthor
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Search returns a page of articles matching the search kind and query.
// With no kind, or with a blank query, it falls back to the unfiltered
// listing ordered per the page request, so a half-filled search form never
// returns an empty board.
func (s *Service) Search(ctx context.Context, kind SearchKind, query string, req pagination.Request) (*PaginatedResult, error) {
	query = strings.TrimSpace(query)
	if kind == SearchNone || query == "" {
		metrics.RecordArticleSearch("")
		page, err := s.Articles.FindAll(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		return s.paginate(page, req), nil
	}

	run, ok := searchDispatch[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSearchKind, kind)
	}
	metrics.RecordArticleSearch(string(kind))
	page, err := run(ctx, s.Articles, query, req)
	if err != nil {
		return nil, fmt.Errorf("search articles by %s: %w", kind, err)
	}
	return s.paginate(page, req), nil
}

// SearchViaHashtag returns a page of articles carrying the exact hashtag.
// A blank tag short-circuits to an empty page without querying the store:
// there is no meaningful "all hashtags" listing, and an unbounded scan would
// be misleading.
func (s *Service) SearchViaHashtag(ctx context.Context, tag string, req pagination.Request) (*PaginatedResult, error) {
	if strings.TrimSpace(tag) == "" {
		return &PaginatedResult{
			Data:       []repository.ArticleWithAuthor{},
			Pagination: pagination.NewMetadata(req, 0),
		}, nil
	}

	metrics.RecordArticleSearch(string(SearchHashtag))
	page, err := s.Articles.FindByHashtag(ctx, tag, req)
	if err != nil {
		return nil, fmt.Errorf("search articles by hashtag: %w", err)
	}
	return s.paginate(page, req), nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive and a NotFoundError
// embedding the id when no such article exists.
func (s *Service) Get(ctx context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Articles.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, &entity.NotFoundError{Resource: "article", ID: id}
	}
	return art, nil
}

// GetWithComments retrieves an article along with its ordered comments.
// Same NotFound contract as Get.
func (s *Service) GetWithComments(ctx context.Context, id int64) (*ArticleWithComments, error) {
	art, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.Comments.ListByArticleID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list article comments: %w", err)
	}
	return &ArticleWithComments{Article: *art, Comments: comments}, nil
}

// Count returns the total number of persisted articles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Articles.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// Save creates a new article for the given author, extracting hashtags from
// the content and the explicit hashtag text. An author that cannot be
// resolved is absorbed as a logged skip rather than surfaced to the caller.
func (s *Service) Save(ctx context.Context, in SaveInput) (outcome.Outcome, error) {
	if in.UserID == "" {
		return outcome.SkippedNotFound, &entity.ValidationError{Field: "userID", Message: "is required"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return outcome.SkippedNotFound, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	author, err := s.Users.FindByUserID(ctx, in.UserID)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("resolve author: %w", err)
	}
	if author == nil {
		s.logger().Warn("article save skipped: author does not exist",
			slog.String("user_id", in.UserID))
		metrics.RecordArticleWrite("save", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}

	now := time.Now()
	art := &entity.Article{
		UserID:   author.UserID,
		Title:    in.Title,
		Content:  in.Content,
		Hashtags: hashtag.Merge(hashtag.Extract(in.Content), hashtag.Extract(in.HashtagText)),
		Audit:    entity.NewAudit(author.UserID, now),
	}

	if err := s.Articles.Save(ctx, art); err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("save article: %w", err)
	}
	metrics.RecordArticleWrite("save", outcome.Applied.String())
	return outcome.Applied, nil
}

// Update mutates an existing article's title, content and hashtag set.
// A missing article or a requester that is not the author is absorbed as a
// logged skip with no mutation; only store failures surface as errors.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (outcome.Outcome, error) {
	if id <= 0 {
		return outcome.SkippedNotFound, ErrInvalidArticleID
	}

	existing, err := s.Articles.FindByID(ctx, id)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		s.logger().Warn("article update skipped: article does not exist",
			slog.Int64("article_id", id))
		metrics.RecordArticleWrite("update", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}

	art := existing.Article
	if art.UserID != in.UserID {
		s.logger().Warn("article update skipped: requester is not the author",
			slog.Int64("article_id", id),
			slog.String("requester", in.UserID))
		metrics.RecordArticleWrite("update", outcome.SkippedUnauthorized.String())
		return outcome.SkippedUnauthorized, nil
	}

	if strings.TrimSpace(in.Title) != "" {
		art.Title = in.Title
	}
	if strings.TrimSpace(in.Content) != "" {
		art.Content = in.Content
	}
	// The hashtag association is recomputed from scratch: previous tags are
	// dropped and the newly extracted set attached; orphan pruning happens in
	// the repository as part of the same transaction.
	art.Hashtags = hashtag.Merge(hashtag.Extract(art.Content), hashtag.Extract(in.HashtagText))
	art.Touch(in.UserID, time.Now())

	if err := s.Articles.Update(ctx, art); err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("update article: %w", err)
	}
	metrics.RecordArticleWrite("update", outcome.Applied.String())
	return outcome.Applied, nil
}

// Delete removes an article when the requester is its author, cascading to
// the article's comments and hashtag associations. A missing article or a
// non-author requester is absorbed as a logged skip.
func (s *Service) Delete(ctx context.Context, id int64, requesterUserID string) (outcome.Outcome, error) {
	if id <= 0 {
		return outcome.SkippedNotFound, ErrInvalidArticleID
	}

	existing, err := s.Articles.FindByID(ctx, id)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("get article: %w", err)
	}
	if existing == nil {
		s.logger().Warn("article delete skipped: article does not exist",
			slog.Int64("article_id", id))
		metrics.RecordArticleWrite("delete", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}
	if existing.Article.UserID != requesterUserID {
		s.logger().Warn("article delete skipped: requester is not the author",
			slog.Int64("article_id", id),
			slog.String("requester", requesterUserID))
		metrics.RecordArticleWrite("delete", outcome.SkippedUnauthorized.String())
		return outcome.SkippedUnauthorized, nil
	}

	deleted, err := s.Articles.DeleteByIDAndUserID(ctx, id, requesterUserID)
	if err != nil {
		return outcome.SkippedNotFound, fmt.Errorf("delete article: %w", err)
	}
	if deleted == 0 {
		// Row disappeared between the ownership check and the delete.
		metrics.RecordArticleWrite("delete", outcome.SkippedNotFound.String())
		return outcome.SkippedNotFound, nil
	}
	metrics.RecordArticleWrite("delete", outcome.Applied.String())
	return outcome.Applied, nil
}

// Hashtags lists all distinct hashtag names in store insertion order.
func (s *Service) Hashtags(ctx context.Context) ([]string, error) {
	tags, err := s.Articles.DistinctHashtags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hashtags: %w", err)
	}
	return tags, nil
}

func (s *Service) paginate(page repository.ArticlePage, req pagination.Request) *PaginatedResult {
	return &PaginatedResult{
		Data:       page.Items,
		Pagination: pagination.NewMetadata(req, page.Total),
	}
}
