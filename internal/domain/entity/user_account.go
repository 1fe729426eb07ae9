package entity

// UserAccount represents a registered board user.
// UserID is the immutable identity key; profile fields are mutable.
// Articles and comments reference the account as author but never own it.
type UserAccount struct {
	UserID       string
	PasswordHash string
	Email        string
	Nickname     string
	Memo         string
	Audit
}
