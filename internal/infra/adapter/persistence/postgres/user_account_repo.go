package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"project-board/internal/domain/entity"
	"project-board/internal/repository"
)

type UserAccountRepo struct {
	db Querier
}

func NewUserAccountRepo(db Querier) repository.UserAccountRepository {
	return &UserAccountRepo{db: db}
}

func (repo *UserAccountRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserAccount, error) {
	const query = `
SELECT user_id, user_password, email, nickname, memo,
       created_at, created_by, modified_at, modified_by
FROM user_accounts
WHERE user_id = $1
LIMIT 1`
	var account entity.UserAccount
	var email, nickname, memo, createdBy, modifiedBy sql.NullString
	err := repo.db.QueryRowContext(ctx, query, userID).
		Scan(&account.UserID, &account.PasswordHash, &email, &nickname, &memo,
			&account.CreatedAt, &createdBy, &account.ModifiedAt, &modifiedBy)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("FindByUserID: %w", err)
	}
	account.Email = email.String
	account.Nickname = nickname.String
	account.Memo = memo.String
	account.CreatedBy = createdBy.String
	account.ModifiedBy = modifiedBy.String
	return &account, nil
}

func (repo *UserAccountRepo) Save(ctx context.Context, account *entity.UserAccount) error {
	const query = `
INSERT INTO user_accounts
       (user_id, user_password, email, nickname, memo,
        created_at, created_by, modified_at, modified_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := repo.db.ExecContext(ctx, query,
		account.UserID, account.PasswordHash, account.Email, account.Nickname, account.Memo,
		account.CreatedAt, account.CreatedBy, account.ModifiedAt, account.ModifiedBy)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (repo *UserAccountRepo) Update(ctx context.Context, account *entity.UserAccount) error {
	const query = `
UPDATE user_accounts SET
       user_password = $1,
       email         = $2,
       nickname      = $3,
       memo          = $4,
       modified_at   = $5,
       modified_by   = $6
WHERE user_id = $7`
	res, err := repo.db.ExecContext(ctx, query,
		account.PasswordHash, account.Email, account.Nickname, account.Memo,
		account.ModifiedAt, account.ModifiedBy, account.UserID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}
