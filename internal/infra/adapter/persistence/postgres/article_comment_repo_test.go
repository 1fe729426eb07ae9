package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"project-board/internal/domain/entity"
	pg "project-board/internal/infra/adapter/persistence/postgres"
)

var commentCols = []string{
	"id", "article_id", "user_id", "content",
	"created_at", "created_by", "modified_at", "modified_by",
	"email", "nickname",
}

func TestArticleCommentRepo_ListByArticleID(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM article_comments c").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(commentCols).
			AddRow(int64(1), int64(1), "uno", "first", now, "uno", now, "uno", "uno@example.com", "Uno").
			AddRow(int64(2), int64(1), "dos", "second", now, "dos", now, "dos", "dos@example.com", "Dos"))

	repo := pg.NewArticleCommentRepo(db)
	got, err := repo.ListByArticleID(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByArticleID err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 comments, got %d", len(got))
	}
	want := &entity.ArticleComment{
		ID: 1, ArticleID: 1, UserID: "uno", Content: "first",
		Audit: entity.Audit{CreatedAt: now, CreatedBy: "uno", ModifiedAt: now, ModifiedBy: "uno"},
	}
	if diff := cmp.Diff(want, got[0].Comment); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if got[1].Author.Nickname != "Dos" {
		t.Fatalf("author nickname=%q", got[1].Author.Nickname)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleCommentRepo_FindByID_notFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("FROM article_comments").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "article_id", "user_id", "content",
			"created_at", "created_by", "modified_at", "modified_by",
		}))

	repo := pg.NewArticleCommentRepo(db)
	got, err := repo.FindByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("FindByID err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing comment, got %+v", got)
	}
}

func TestArticleCommentRepo_Save(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	comment := &entity.ArticleComment{
		ArticleID: 1, UserID: "uno", Content: "hello",
		Audit: entity.Audit{CreatedAt: now, CreatedBy: "uno", ModifiedAt: now, ModifiedBy: "uno"},
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO article_comments")).
		WithArgs(int64(1), "uno", "hello", now, "uno", now, "uno").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := pg.NewArticleCommentRepo(db)
	if err := repo.Save(context.Background(), comment); err != nil {
		t.Fatalf("Save err=%v", err)
	}
	if comment.ID != 5 {
		t.Fatalf("Save must assign the generated id, got %d", comment.ID)
	}
}

func TestArticleCommentRepo_UpdateContent(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	comment := &entity.ArticleComment{
		ID: 5, Content: "edited",
		Audit: entity.Audit{ModifiedAt: now, ModifiedBy: "uno"},
	}

	mock.ExpectExec("UPDATE article_comments").
		WithArgs("edited", now, "uno", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleCommentRepo(db)
	if err := repo.UpdateContent(context.Background(), comment); err != nil {
		t.Fatalf("UpdateContent err=%v", err)
	}
}

func TestArticleCommentRepo_DeleteByIDAndUserID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_comments")).
		WithArgs(int64(5), "uno").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleCommentRepo(db)
	deleted, err := repo.DeleteByIDAndUserID(context.Background(), 5, "uno")
	if err != nil {
		t.Fatalf("DeleteByIDAndUserID err=%v", err)
	}
	if deleted != 1 {
		t.Fatalf("want 1 deleted, got %d", deleted)
	}
}

func TestArticleCommentRepo_DeleteByIDAndUserID_noMatch(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM article_comments")).
		WithArgs(int64(5), "mallory").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleCommentRepo(db)
	deleted, err := repo.DeleteByIDAndUserID(context.Background(), 5, "mallory")
	if err != nil {
		t.Fatalf("DeleteByIDAndUserID err=%v", err)
	}
	if deleted != 0 {
		t.Fatalf("want 0 deleted, got %d", deleted)
	}
}

func TestArticleCommentRepo_CountByArticleID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM article_comments")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	repo := pg.NewArticleCommentRepo(db)
	count, err := repo.CountByArticleID(context.Background(), 1)
	if err != nil || count != 3 {
		t.Fatalf("CountByArticleID err=%v count=%d", err, count)
	}
}
