package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"project-board/internal/domain/entity"
	"project-board/internal/repository"
)

type ArticleCommentRepo struct {
	db Querier
}

func NewArticleCommentRepo(db Querier) repository.ArticleCommentRepository {
	return &ArticleCommentRepo{db: db}
}

func (repo *ArticleCommentRepo) ListByArticleID(ctx context.Context, articleID int64) ([]repository.CommentWithAuthor, error) {
	const query = `
SELECT c.id, c.article_id, c.user_id, c.content,
       c.created_at, c.created_by, c.modified_at, c.modified_by,
       u.email, u.nickname
FROM article_comments c
INNER JOIN user_accounts u ON c.user_id = u.user_id
WHERE c.article_id = $1
ORDER BY c.created_at ASC, c.id ASC`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticleID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]repository.CommentWithAuthor, 0, 20)
	for rows.Next() {
		var comment entity.ArticleComment
		var author entity.UserAccount
		var createdBy, modifiedBy, email, nickname sql.NullString
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content,
			&comment.CreatedAt, &createdBy, &comment.ModifiedAt, &modifiedBy,
			&email, &nickname); err != nil {
			return nil, fmt.Errorf("ListByArticleID: Scan: %w", err)
		}
		comment.CreatedBy = createdBy.String
		comment.ModifiedBy = modifiedBy.String
		author.UserID = comment.UserID
		author.Email = email.String
		author.Nickname = nickname.String
		comments = append(comments, repository.CommentWithAuthor{
			Comment: &comment,
			Author:  &author,
		})
	}
	return comments, rows.Err()
}

func (repo *ArticleCommentRepo) FindByID(ctx context.Context, id int64) (*entity.ArticleComment, error) {
	const query = `
SELECT id, article_id, user_id, content, created_at, created_by, modified_at, modified_by
FROM article_comments
WHERE id = $1
LIMIT 1`
	var comment entity.ArticleComment
	var createdBy, modifiedBy sql.NullString
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.UserID, &comment.Content,
			&comment.CreatedAt, &createdBy, &comment.ModifiedAt, &modifiedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	comment.CreatedBy = createdBy.String
	comment.ModifiedBy = modifiedBy.String
	return &comment, nil
}

func (repo *ArticleCommentRepo) Save(ctx context.Context, comment *entity.ArticleComment) error {
	const query = `
INSERT INTO article_comments
       (article_id, user_id, content, created_at, created_by, modified_at, modified_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.UserID, comment.Content,
		comment.CreatedAt, comment.CreatedBy, comment.ModifiedAt, comment.ModifiedBy,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (repo *ArticleCommentRepo) UpdateContent(ctx context.Context, comment *entity.ArticleComment) error {
	const query = `
UPDATE article_comments SET
       content     = $1,
       modified_at = $2,
       modified_by = $3
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query,
		comment.Content, comment.ModifiedAt, comment.ModifiedBy, comment.ID)
	if err != nil {
		return fmt.Errorf("UpdateContent: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("UpdateContent: no rows affected")
	}
	return nil
}

func (repo *ArticleCommentRepo) DeleteByIDAndUserID(ctx context.Context, id int64, userID string) (int64, error) {
	const query = `DELETE FROM article_comments WHERE id = $1 AND user_id = $2`
	res, err := repo.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: %w", err)
	}
	return deleted, nil
}

func (repo *ArticleCommentRepo) CountByArticleID(ctx context.Context, articleID int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM article_comments WHERE article_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, articleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByArticleID: %w", err)
	}
	return count, nil
}
