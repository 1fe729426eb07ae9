package comment_test

import (
	"context"
	"time"

	"project-board/internal/common/pagination"
	"project-board/internal/domain/entity"
	"project-board/internal/repository"
	cmtUC "project-board/internal/usecase/comment"
)

type stubCommentRepo struct {
	data   map[int64]*entity.ArticleComment
	nextID int64
	err    error

	updated *entity.ArticleComment
	deleted int64
}

func (s *stubCommentRepo) ListByArticleID(_ context.Context, articleID int64) ([]repository.CommentWithAuthor, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []repository.CommentWithAuthor{}
	for _, c := range s.data {
		if c.ArticleID == articleID {
			out = append(out, repository.CommentWithAuthor{
				Comment: c,
				Author:  &entity.UserAccount{UserID: c.UserID, Nickname: c.UserID},
			})
		}
	}
	return out, nil
}

func (s *stubCommentRepo) FindByID(_ context.Context, id int64) (*entity.ArticleComment, error) {
	return s.data[id], s.err
}

func (s *stubCommentRepo) Save(_ context.Context, c *entity.ArticleComment) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	c.ID = s.nextID
	s.data[c.ID] = c
	return nil
}

func (s *stubCommentRepo) UpdateContent(_ context.Context, c *entity.ArticleComment) error {
	if s.err != nil {
		return s.err
	}
	s.updated = c
	s.data[c.ID] = c
	return nil
}

func (s *stubCommentRepo) DeleteByIDAndUserID(_ context.Context, id int64, userID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if c, ok := s.data[id]; ok && c.UserID == userID {
		delete(s.data, id)
		s.deleted = id
		return 1, nil
	}
	return 0, nil
}

func (s *stubCommentRepo) CountByArticleID(_ context.Context, articleID int64) (int64, error) {
	n := int64(0)
	for _, c := range s.data {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n, s.err
}

// stubArticleRepo resolves the parent article and nothing more.
type stubArticleRepo struct {
	articles map[int64]*entity.Article
	err      error
}

func (s *stubArticleRepo) FindByID(_ context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	if s.err != nil {
		return nil, s.err
	}
	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	return &repository.ArticleWithAuthor{Article: a}, nil
}

func (s *stubArticleRepo) FindAll(_ context.Context, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) FindByTitleContaining(_ context.Context, _ string, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) FindByContentContaining(_ context.Context, _ string, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) FindByNicknameContaining(_ context.Context, _ string, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) FindByUserIDContaining(_ context.Context, _ string, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) FindByHashtag(_ context.Context, _ string, _ pagination.Request) (repository.ArticlePage, error) {
	return repository.ArticlePage{}, s.err
}
func (s *stubArticleRepo) Count(_ context.Context) (int64, error)                 { return 0, s.err }
func (s *stubArticleRepo) Save(_ context.Context, _ *entity.Article) error        { return s.err }
func (s *stubArticleRepo) Update(_ context.Context, _ *entity.Article) error      { return s.err }
func (s *stubArticleRepo) DeleteByIDAndUserID(_ context.Context, _ int64, _ string) (int64, error) {
	return 0, s.err
}
func (s *stubArticleRepo) DistinctHashtags(_ context.Context) ([]string, error) { return nil, s.err }
func (s *stubArticleRepo) PruneOrphanHashtags(_ context.Context) (int64, error) { return 0, s.err }

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

func newService() (*cmtUC.Service, *stubCommentRepo) {
	now := time.Date(2025, 10, 26, 12, 0, 0, 0, time.UTC)
	comments := &stubCommentRepo{
		nextID: 10,
		data: map[int64]*entity.ArticleComment{
			10: {ID: 10, ArticleID: 1, UserID: "dos", Content: "Nice post",
				Audit: entity.NewAudit("dos", now)},
		},
	}
	articles := &stubArticleRepo{articles: map[int64]*entity.Article{
		1: {ID: 1, UserID: "uno", Title: "Go generics", Audit: entity.NewAudit("uno", now)},
	}}
	users := &stubUserRepo{accounts: map[string]*entity.UserAccount{
		"uno": {UserID: "uno", Nickname: "Uno"},
		"dos": {UserID: "dos", Nickname: "Dos"},
	}}
	return &cmtUC.Service{Comments: comments, Articles: articles, Users: users}, comments
}
