package user

import "errors"

var (
	// ErrDuplicateUserID is returned when a registration reuses an
	// existing user id.
	ErrDuplicateUserID = errors.New("user id already taken")

	// ErrInvalidCredentials is returned when authentication fails.
	// The caller must not learn whether the id or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
