package article

import (
	"context"
	"fmt"
	"strings"

	"project-board/internal/common/pagination"
	"project-board/internal/repository"
)

// SearchKind selects the article field a search query runs against.
// The zero value means no field filter (unfiltered listing).
type SearchKind string

const (
	SearchNone     SearchKind = ""
	SearchTitle    SearchKind = "TITLE"
	SearchContent  SearchKind = "CONTENT"
	SearchNickname SearchKind = "NICKNAME"
	SearchUserID   SearchKind = "USER_ID"
	SearchHashtag  SearchKind = "HASHTAG"
)

// SearchKinds lists the supported search kinds in display order.
func SearchKinds() []SearchKind {
	return []SearchKind{SearchTitle, SearchContent, SearchNickname, SearchUserID, SearchHashtag}
}

// ParseSearchKind maps a request parameter to a SearchKind.
// An empty string parses to SearchNone; anything unrecognized is an error.
func ParseSearchKind(s string) (SearchKind, error) {
	kind := SearchKind(strings.ToUpper(strings.TrimSpace(s)))
	switch kind {
	case SearchNone, SearchTitle, SearchContent, SearchNickname, SearchUserID, SearchHashtag:
		return kind, nil
	default:
		return SearchNone, fmt.Errorf("%w: %q", ErrUnknownSearchKind, s)
	}
}

// searchQuery runs one search variant against the repository.
type searchQuery func(ctx context.Context, repo repository.ArticleRepository, query string, req pagination.Request) (repository.ArticlePage, error)

// searchDispatch maps each search kind to its repository query.
// Adding a search kind is a single entry here plus the constant above.
var searchDispatch = map[SearchKind]searchQuery{
	SearchTitle: func(ctx context.Context, repo repository.ArticleRepository, q string, req pagination.Request) (repository.ArticlePage, error) {
		return repo.FindByTitleContaining(ctx, q, req)
	},
	SearchContent: func(ctx context.Context, repo repository.ArticleRepository, q string, req pagination.Request) (repository.ArticlePage, error) {
		return repo.FindByContentContaining(ctx, q, req)
	},
	SearchNickname: func(ctx context.Context, repo repository.ArticleRepository, q string, req pagination.Request) (repository.ArticlePage, error) {
		return repo.FindByNicknameContaining(ctx, q, req)
	},
	SearchUserID: func(ctx context.Context, repo repository.ArticleRepository, q string, req pagination.Request) (repository.ArticlePage, error) {
		return repo.FindByUserIDContaining(ctx, q, req)
	},
	SearchHashtag: func(ctx context.Context, repo repository.ArticleRepository, q string, req pagination.Request) (repository.ArticlePage, error) {
		return repo.FindByHashtag(ctx, q, req)
	},
}
