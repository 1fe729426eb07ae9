package repository

import (
	"context"

	"project-board/internal/domain/entity"
)

type UserAccountRepository interface {
	// FindByUserID returns the account or nil when absent.
	FindByUserID(ctx context.Context, userID string) (*entity.UserAccount, error)
	// Save persists a new account. A duplicate user id surfaces as a store
	// constraint error.
	Save(ctx context.Context, account *entity.UserAccount) error
	// Update mutates the account's profile and audit fields.
	Update(ctx context.Context, account *entity.UserAccount) error
}
