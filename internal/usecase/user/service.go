// Package user implements account registration and credential checks.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"project-board/internal/domain/entity"
	"project-board/internal/observability/metrics"
	"project-board/internal/repository"
)

// Service exposes user account operations.
type Service struct {
	Users  repository.UserAccountRepository
	Logger *slog.Logger
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	UserID   string
	Password string
	Email    string
	Nickname string
	Memo     string
}

// UpdateProfileInput carries mutable profile fields. Blank fields keep
// their stored values.
type UpdateProfileInput struct {
	Email    string
	Nickname string
	Memo     string
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Register creates a new account with a bcrypt password hash.
// Reusing an existing user id fails with ErrDuplicateUserID.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.UserAccount, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return nil, &entity.ValidationError{Field: "userId", Message: "is required"}
	}
	if len(in.Password) < 8 {
		return nil, &entity.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	existing, err := s.Users.FindByUserID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user id: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("register %q: %w", in.UserID, ErrDuplicateUserID)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &entity.UserAccount{
		UserID:       in.UserID,
		PasswordHash: string(hash),
		Email:        in.Email,
		Nickname:     in.Nickname,
		Memo:         in.Memo,
		Audit:        entity.NewAudit(in.UserID, time.Now()),
	}
	if err := s.Users.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	s.logger().Info("user registered", slog.String("user_id", account.UserID))
	return account, nil
}

// Authenticate verifies a user id and password pair. A missing account and
// a wrong password both map to ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, userID, password string) (*entity.UserAccount, error) {
	account, err := s.Users.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if account == nil {
		metrics.RecordAuthRequest("denied")
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		metrics.RecordAuthRequest("denied")
		return nil, ErrInvalidCredentials
	}
	metrics.RecordAuthRequest("granted")
	return account, nil
}

// Get fetches an account by its user id.
func (s *Service) Get(ctx context.Context, userID string) (*entity.UserAccount, error) {
	account, err := s.Users.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if account == nil {
		return nil, &entity.NotFoundError{Resource: "user", ID: userID}
	}
	return account, nil
}

// UpdateProfile mutates the account's profile fields. Blank inputs keep the
// stored values, matching how article updates treat blanks.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.UserAccount, error) {
	account, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Email) != "" {
		account.Email = in.Email
	}
	if strings.TrimSpace(in.Nickname) != "" {
		account.Nickname = in.Nickname
	}
	if strings.TrimSpace(in.Memo) != "" {
		account.Memo = in.Memo
	}
	account.Touch(userID, time.Now())
	if err := s.Users.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return account, nil
}
