package model

// User represents a user account. Accounts are create-only: no update or
// delete surface exists for them.
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"-"` // bcrypt hash, never serialized
}
