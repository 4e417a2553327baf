package entity

import "time"

// Valid roles for User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account holder. Email is stored lowercased and is unique
// case-insensitively.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
