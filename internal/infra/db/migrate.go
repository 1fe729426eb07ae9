package db

import "database/sql"

// MigrateUp creates the board schema. Statements are idempotent so the
// migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS user_accounts (
    user_id       VARCHAR(50) PRIMARY KEY,
    user_password VARCHAR(255) NOT NULL,
    email         VARCHAR(100),
    nickname      VARCHAR(100),
    memo          TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by    VARCHAR(100),
    modified_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_by   VARCHAR(100)
)`,
		`CREATE TABLE IF NOT EXISTS articles (
    id          BIGSERIAL PRIMARY KEY,
    user_id     VARCHAR(50) NOT NULL REFERENCES user_accounts(user_id),
    title       VARCHAR(255) NOT NULL,
    content     VARCHAR(10000) NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by  VARCHAR(100),
    modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_by VARCHAR(100)
)`,
		`CREATE TABLE IF NOT EXISTS hashtags (
    id   BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL UNIQUE
)`,
		`CREATE TABLE IF NOT EXISTS article_hashtags (
    article_id BIGINT NOT NULL REFERENCES articles(id),
    hashtag_id BIGINT NOT NULL REFERENCES hashtags(id),
    PRIMARY KEY (article_id, hashtag_id)
)`,
		`CREATE TABLE IF NOT EXISTS article_comments (
    id          BIGSERIAL PRIMARY KEY,
    article_id  BIGINT NOT NULL REFERENCES articles(id),
    user_id     VARCHAR(50) NOT NULL REFERENCES user_accounts(user_id),
    content     VARCHAR(500) NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    created_by  VARCHAR(100),
    modified_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    modified_by VARCHAR(100)
)`,
	}
	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	indexes := []string{
		// ORDER BY created_at DESC is the default listing order
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_user_id ON articles(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_title ON articles(title)`,
		`CREATE INDEX IF NOT EXISTS idx_article_hashtags_hashtag_id ON article_hashtags(hashtag_id)`,
		`CREATE INDEX IF NOT EXISTS idx_article_comments_article_id ON article_comments(article_id)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// trigram extension speeds up the ILIKE searches; skipped silently when
	// the role lacks the privilege
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_content_gin ON articles USING gin(content gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_user_accounts_nickname_gin ON user_accounts USING gin(nickname gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// fails when pg_trgm is unavailable
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown drops the board schema in dependency order.
// Use with caution: this deletes all data.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS article_comments`,
		`DROP TABLE IF EXISTS article_hashtags`,
		`DROP TABLE IF EXISTS hashtags`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS user_accounts`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
