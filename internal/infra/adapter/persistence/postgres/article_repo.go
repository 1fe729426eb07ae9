package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"project-board/internal/common/pagination"
	"project-board/internal/domain/entity"
	"project-board/internal/repository"
)

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `
a.id, a.user_id, a.title, a.content,
a.created_at, a.created_by, a.modified_at, a.modified_by,
u.email, u.nickname`

const articleBase = `
SELECT ` + articleColumns + `
FROM articles a
INNER JOIN user_accounts u ON a.user_id = u.user_id`

func scanArticleRow(rows *sql.Rows) (repository.ArticleWithAuthor, error) {
	var article entity.Article
	var author entity.UserAccount
	var createdBy, modifiedBy, email, nickname sql.NullString
	if err := rows.Scan(&article.ID, &article.UserID, &article.Title, &article.Content,
		&article.CreatedAt, &createdBy, &article.ModifiedAt, &modifiedBy,
		&email, &nickname); err != nil {
		return repository.ArticleWithAuthor{}, err
	}
	article.CreatedBy = createdBy.String
	article.ModifiedBy = modifiedBy.String
	author.UserID = article.UserID
	author.Email = email.String
	author.Nickname = nickname.String
	return repository.ArticleWithAuthor{Article: &article, Author: &author}, nil
}

// page runs a filtered listing plus its matching COUNT and attaches each
// article's hashtag set. where must reference the aliased tables a and u.
func (repo *ArticleRepo) page(ctx context.Context, op, where string, args []interface{}, req pagination.Request) (repository.ArticlePage, error) {
	direction := "ASC"
	if req.Sort.Desc {
		direction = "DESC"
	}
	paramIndex := len(args) + 1
	// Sort.Field comes from the pagination whitelist, safe to splice
	query := fmt.Sprintf(`%s
%s
ORDER BY a.%s %s, a.id %s
LIMIT $%d OFFSET $%d`, articleBase, where, req.Sort.Field, direction, direction, paramIndex, paramIndex+1)

	queryArgs := append(append([]interface{}{}, args...),
		req.Limit, pagination.CalculateOffset(req.Page, req.Limit))

	rows, err := repo.db.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return repository.ArticlePage{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]repository.ArticleWithAuthor, 0, req.Limit)
	for rows.Next() {
		item, err := scanArticleRow(rows)
		if err != nil {
			return repository.ArticlePage{}, fmt.Errorf("%s: Scan: %w", op, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return repository.ArticlePage{}, fmt.Errorf("%s: rows.Err: %w", op, err)
	}

	countQuery := `
SELECT COUNT(*)
FROM articles a
INNER JOIN user_accounts u ON a.user_id = u.user_id
` + where
	var total int64
	if err := repo.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return repository.ArticlePage{}, fmt.Errorf("%s: count: %w", op, err)
	}

	if err := repo.attachHashtags(ctx, items); err != nil {
		return repository.ArticlePage{}, fmt.Errorf("%s: %w", op, err)
	}
	return repository.ArticlePage{Items: items, Total: total}, nil
}

// attachHashtags loads the hashtag sets for all listed articles in one query.
func (repo *ArticleRepo) attachHashtags(ctx context.Context, items []repository.ArticleWithAuthor) error {
	if len(items) == 0 {
		return nil
	}
	byID := make(map[int64]*entity.Article, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		byID[item.Article.ID] = item.Article
		ids = append(ids, item.Article.ID)
	}

	const query = `
SELECT ah.article_id, h.name
FROM article_hashtags ah
INNER JOIN hashtags h ON ah.hashtag_id = h.id
WHERE ah.article_id = ANY($1)
ORDER BY h.id`
	rows, err := repo.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("attachHashtags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var articleID int64
		var name string
		if err := rows.Scan(&articleID, &name); err != nil {
			return fmt.Errorf("attachHashtags: Scan: %w", err)
		}
		if article, ok := byID[articleID]; ok {
			article.Hashtags = append(article.Hashtags, name)
		}
	}
	return rows.Err()
}

func (repo *ArticleRepo) FindAll(ctx context.Context, req pagination.Request) (repository.ArticlePage, error) {
	return repo.page(ctx, "FindAll", "", nil, req)
}

func (repo *ArticleRepo) FindByTitleContaining(ctx context.Context, query string, req pagination.Request) (repository.ArticlePage, error) {
	return repo.page(ctx, "FindByTitleContaining",
		"WHERE a.title ILIKE $1", []interface{}{"%" + query + "%"}, req)
}

func (repo *ArticleRepo) FindByContentContaining(ctx context.Context, query string, req pagination.Request) (repository.ArticlePage, error) {
	return repo.page(ctx, "FindByContentContaining",
		"WHERE a.content ILIKE $1", []interface{}{"%" + query + "%"}, req)
}

func (repo *ArticleRepo) FindByNicknameContaining(ctx context.Context, query string, req pagination.Request) (repository.ArticlePage, error) {
	return repo.page(ctx, "FindByNicknameContaining",
		"WHERE u.nickname ILIKE $1", []interface{}{"%" + query + "%"}, req)
}

func (repo *ArticleRepo) FindByUserIDContaining(ctx context.Context, query string, req pagination.Request) (repository.ArticlePage, error) {
	return repo.page(ctx, "FindByUserIDContaining",
		"WHERE a.user_id ILIKE $1", []interface{}{"%" + query + "%"}, req)
}

func (repo *ArticleRepo) FindByHashtag(ctx context.Context, tag string, req pagination.Request) (repository.ArticlePage, error) {
	where := `WHERE EXISTS (
    SELECT 1 FROM article_hashtags ah
    INNER JOIN hashtags h ON ah.hashtag_id = h.id
    WHERE ah.article_id = a.id AND h.name = $1)`
	return repo.page(ctx, "FindByHashtag", where, []interface{}{tag}, req)
}

func (repo *ArticleRepo) FindByID(ctx context.Context, id int64) (*repository.ArticleWithAuthor, error) {
	const query = articleBase + `
WHERE a.id = $1
LIMIT 1`
	rows, err := repo.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("FindByID: %w", err)
		}
		return nil, nil
	}
	item, err := scanArticleRow(rows)
	if err != nil {
		return nil, fmt.Errorf("FindByID: Scan: %w", err)
	}
	_ = rows.Close()

	items := []repository.ArticleWithAuthor{item}
	if err := repo.attachHashtags(ctx, items); err != nil {
		return nil, fmt.Errorf("FindByID: %w", err)
	}
	return &items[0], nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Save(ctx context.Context, article *entity.Article) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Save: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insert = `
INSERT INTO articles
       (user_id, title, content, created_at, created_by, modified_at, modified_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`
	if err := tx.QueryRowContext(ctx, insert,
		article.UserID, article.Title, article.Content,
		article.CreatedAt, article.CreatedBy, article.ModifiedAt, article.ModifiedBy,
	).Scan(&article.ID); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	if err := linkHashtags(ctx, tx, article.ID, article.Hashtags); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Save: commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Update: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const update = `
UPDATE articles SET
       title       = $1,
       content     = $2,
       modified_at = $3,
       modified_by = $4
WHERE id = $5`
	res, err := tx.ExecContext(ctx, update,
		article.Title, article.Content, article.ModifiedAt, article.ModifiedBy, article.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_hashtags WHERE article_id = $1`, article.ID); err != nil {
		return fmt.Errorf("Update: unlink hashtags: %w", err)
	}
	if err := linkHashtags(ctx, tx, article.ID, article.Hashtags); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pruneOrphanHashtagsSQL); err != nil {
		return fmt.Errorf("Update: prune hashtags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Update: commit: %w", err)
	}
	return nil
}

// linkHashtags upserts each tag and associates it with the article.
func linkHashtags(ctx context.Context, tx *sql.Tx, articleID int64, tags []string) error {
	const upsert = `
INSERT INTO hashtags (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`
	const link = `
INSERT INTO article_hashtags (article_id, hashtag_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	for _, tag := range tags {
		var hashtagID int64
		if err := tx.QueryRowContext(ctx, upsert, tag).Scan(&hashtagID); err != nil {
			return fmt.Errorf("upsert hashtag %q: %w", tag, err)
		}
		if _, err := tx.ExecContext(ctx, link, articleID, hashtagID); err != nil {
			return fmt.Errorf("link hashtag %q: %w", tag, err)
		}
	}
	return nil
}

const pruneOrphanHashtagsSQL = `
DELETE FROM hashtags h
WHERE NOT EXISTS (
    SELECT 1 FROM article_hashtags ah WHERE ah.hashtag_id = h.id)`

func (repo *ArticleRepo) DeleteByIDAndUserID(ctx context.Context, id int64, userID string) (int64, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// ownership gate before touching dependent rows
	var owned bool
	if err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1 AND user_id = $2)`,
		id, userID).Scan(&owned); err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: %w", err)
	}
	if !owned {
		return 0, nil
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_comments WHERE article_id = $1`, id); err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: comments: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM article_hashtags WHERE article_id = $1`, id); err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: hashtags: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM articles WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: %w", err)
	}

	if _, err := tx.ExecContext(ctx, pruneOrphanHashtagsSQL); err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: prune hashtags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("DeleteByIDAndUserID: commit: %w", err)
	}
	return deleted, nil
}

func (repo *ArticleRepo) DistinctHashtags(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM hashtags ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("DistinctHashtags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0, 50)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("DistinctHashtags: Scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (repo *ArticleRepo) PruneOrphanHashtags(ctx context.Context) (int64, error) {
	res, err := repo.db.ExecContext(ctx, pruneOrphanHashtagsSQL)
	if err != nil {
		return 0, fmt.Errorf("PruneOrphanHashtags: %w", err)
	}
	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("PruneOrphanHashtags: %w", err)
	}
	return pruned, nil
}
