// Package repository declares the persistence interfaces the service layer
// depends on. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"project-board/internal/common/pagination"
	"project-board/internal/domain/entity"
)

// ArticleWithAuthor pairs an article with its author's display data.
type ArticleWithAuthor struct {
	Article *entity.Article
	Author  *entity.UserAccount
}

// ArticlePage is one page of an article listing plus the total element count
// across all pages, from which total pages are derived.
type ArticlePage struct {
	Items []ArticleWithAuthor
	Total int64
}

type ArticleRepository interface {
	// FindAll returns an unfiltered page of articles ordered per the request.
	FindAll(ctx context.Context, req pagination.Request) (ArticlePage, error)
	// FindByTitleContaining returns a page of articles whose title contains
	// the query (case-insensitive substring match).
	FindByTitleContaining(ctx context.Context, query string, req pagination.Request) (ArticlePage, error)
	FindByContentContaining(ctx context.Context, query string, req pagination.Request) (ArticlePage, error)
	FindByNicknameContaining(ctx context.Context, query string, req pagination.Request) (ArticlePage, error)
	FindByUserIDContaining(ctx context.Context, query string, req pagination.Request) (ArticlePage, error)
	// FindByHashtag returns a page of articles carrying the exact tag.
	FindByHashtag(ctx context.Context, tag string, req pagination.Request) (ArticlePage, error)
	// FindByID returns the article with its author and hashtag set,
	// or nil when no such article exists.
	FindByID(ctx context.Context, id int64) (*ArticleWithAuthor, error)
	Count(ctx context.Context) (int64, error)
	// Save persists a new article and its hashtag associations, creating
	// hashtag records for previously-unseen tags. Assigns the article ID.
	Save(ctx context.Context, article *entity.Article) error
	// Update mutates title/content/audit fields and replaces the hashtag
	// association set, pruning hashtags left with zero referencing articles.
	Update(ctx context.Context, article *entity.Article) error
	// DeleteByIDAndUserID removes the article only when userID matches the
	// author, cascading to its comments and hashtag associations and pruning
	// orphaned hashtags. Returns the number of articles deleted (0 or 1).
	DeleteByIDAndUserID(ctx context.Context, id int64, userID string) (int64, error)
	// DistinctHashtags lists all hashtag names in store insertion order.
	DistinctHashtags(ctx context.Context) ([]string, error)
	// PruneOrphanHashtags removes hashtags with no referencing articles and
	// returns how many were removed. Used by the maintenance worker.
	PruneOrphanHashtags(ctx context.Context) (int64, error)
}
