package article_test

import (
	"context"
	"strings"
	"time"

	"project-board/internal/common/pagination"
	"project-board/internal/domain/entity"
	"project-board/internal/repository"
	artUC "project-board/internal/usecase/article"
)

// stubArticleRepo backs the handler tests with a fixed in-memory board.
type stubArticleRepo struct {
	items  []repository.ArticleWithAuthor
	nextID int64
	err    error

	saved   *entity.Article
	updated *entity.Article
	deleted int64
}

func (s *stubArticleRepo) page(items []repository.ArticleWithAuthor, req pagination.Request) (repository.ArticlePage, error) {
	if s.err != nil {
		return repository.ArticlePage{}, s.err
	}
	total := int64(len(items))
	offset := pagination.CalculateOffset(req.Page, req.Limit)
	if offset >= len(items) {
		return repository.ArticlePage{Items: []repository.ArticleWithAuthor{}, Total: total}, nil
	}
	end := offset + req.Limit
	if end > len(items) {
		end = len(items)
	}
	return repository.ArticlePage{Items: items[offset:end], Total: total}, nil
}

func (s *stubArticleRepo) FindAll(_ context.Context, req pagination.Request) (repository.ArticlePage, error) {
	return s.page(s.items, req)
}

func (s *stubArticleRepo) filter(req pagination.Request, keep func(repository.ArticleWithAuthor) bool) (repository.ArticlePage, error) {
	matched := make([]repository.ArticleWithAuthor, 0, len(s.items))
	for _, item := range s.items {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	return s.page(matched, req)
}

func (s *stubArticleRepo) FindByTitleContaining(_ context.Context, q string, req pagination.Request) (repository.ArticlePage, error) {
	return s.filter(req, func(it repository.ArticleWithAuthor) bool {
		return strings.Contains(strings.ToLower(it.Article.Title), strings.ToLower(q))
	})
}

func (s *stubArticleRepo) FindByContentContaining(_ context.Context, q string, req pagination.Request) (repository.ArticlePage, error) {
	return s.filter(req, func(it repository.ArticleWithAuthor) bool {
		return strings.Contains(strings.ToLower(it.Article.Content), strings.ToLower(q))
	})
}

func (s *stubArticleRepo) FindByNicknameContaining(_ context.Context, q string, req pagination.Request) (repository.ArticlePage, error) {
	return s.filter(req, func(it repository.ArticleWithAuthor) bool {
		return it.Author != nil && strings.Contains(strings.ToLower(it.Author.Nickname), strings.ToLower(q))
	})
}

func (s *stubArticleRepo) FindByUserIDContaining(_ context.Context, q string, req pagination.Request) (repository.ArticlePage, error) {
	return s.filter(req, func(it repository.ArticleWithAuthor) bool {
		return strings.Contains(strings.ToLower(it.Article.UserID), strings.ToLower(q))
	})
}

func (s *stubArticleRepo) FindByHashtag(_ context.Context, tag string, req pagination.Request) (repository.ArticlePage, error) {
	return s.filter(req, func(it repository.ArticleWithAuthor) bool {
		return it.Article.HasHashtag(tag)
	})
}

func (s *stubArticleRepo) FindByID(_ context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.items {
		if s.items[i].Article.ID == id {
			return &s.items[i], nil
		}
	}
	return nil, nil
}

func (s *stubArticleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), s.err
}

func (s *stubArticleRepo) Save(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	a.ID = s.nextID
	s.saved = a
	return nil
}

func (s *stubArticleRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.updated = a
	return nil
}

func (s *stubArticleRepo) DeleteByIDAndUserID(_ context.Context, id int64, userID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	for _, item := range s.items {
		if item.Article.ID == id && item.Article.UserID == userID {
			s.deleted = id
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubArticleRepo) DistinctHashtags(_ context.Context) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	seen := map[string]bool{}
	var tags []string
	for _, item := range s.items {
		for _, tag := range item.Article.Hashtags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

func (s *stubArticleRepo) PruneOrphanHashtags(_ context.Context) (int64, error) {
	return 0, s.err
}

type stubCommentRepo struct {
	comments []repository.CommentWithAuthor
	err      error
}

func (s *stubCommentRepo) ListByArticleID(_ context.Context, articleID int64) ([]repository.CommentWithAuthor, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []repository.CommentWithAuthor{}
	for _, c := range s.comments {
		if c.Comment.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCommentRepo) FindByID(_ context.Context, id int64) (*entity.ArticleComment, error) {
	for _, c := range s.comments {
		if c.Comment.ID == id {
			return c.Comment, nil
		}
	}
	return nil, s.err
}

func (s *stubCommentRepo) Save(_ context.Context, _ *entity.ArticleComment) error { return s.err }
func (s *stubCommentRepo) UpdateContent(_ context.Context, _ *entity.ArticleComment) error {
	return s.err
}
func (s *stubCommentRepo) DeleteByIDAndUserID(_ context.Context, _ int64, _ string) (int64, error) {
	return 0, s.err
}
func (s *stubCommentRepo) CountByArticleID(_ context.Context, articleID int64) (int64, error) {
	n := int64(0)
	for _, c := range s.comments {
		if c.Comment.ArticleID == articleID {
			n++
		}
	}
	return n, s.err
}

type stubUserRepo struct {
	accounts map[string]*entity.UserAccount
	err      error
}

func (s *stubUserRepo) FindByUserID(_ context.Context, userID string) (*entity.UserAccount, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.accounts[userID], nil
}

func (s *stubUserRepo) Save(_ context.Context, _ *entity.UserAccount) error   { return s.err }
func (s *stubUserRepo) Update(_ context.Context, _ *entity.UserAccount) error { return s.err }

func boardFixture() (*stubArticleRepo, *stubCommentRepo, *stubUserRepo) {
	now := time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)
	uno := &entity.UserAccount{UserID: "uno", Nickname: "Uno", Audit: entity.NewAudit("uno", now)}
	dos := &entity.UserAccount{UserID: "dos", Nickname: "Dos", Audit: entity.NewAudit("dos", now)}

	articles := &stubArticleRepo{
		nextID: 2,
		items: []repository.ArticleWithAuthor{
			{
				Article: &entity.Article{
					ID: 1, UserID: "uno", Title: "Go generics",
					Content: "Notes on #go generics", Hashtags: []string{"#go"},
					Audit: entity.NewAudit("uno", now),
				},
				Author: uno,
			},
			{
				Article: &entity.Article{
					ID: 2, UserID: "dos", Title: "Postgres tips",
					Content: "Indexing with #postgres", Hashtags: []string{"#postgres"},
					Audit: entity.NewAudit("dos", now.Add(time.Hour)),
				},
				Author: dos,
			},
		},
	}
	comments := &stubCommentRepo{
		comments: []repository.CommentWithAuthor{
			{
				Comment: &entity.ArticleComment{
					ID: 10, ArticleID: 1, UserID: "dos", Content: "Nice post",
					Audit: entity.NewAudit("dos", now.Add(time.Minute)),
				},
				Author: dos,
			},
		},
	}
	users := &stubUserRepo{accounts: map[string]*entity.UserAccount{"uno": uno, "dos": dos}}
	return articles, comments, users
}

func newService() (*artUC.Service, *stubArticleRepo) {
	articles, comments, users := boardFixture()
	return &artUC.Service{Articles: articles, Comments: comments, Users: users}, articles
}
