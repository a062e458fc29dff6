// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// User represents a user in the Signance system. Every transaction, budget
// and saving goal is owned by exactly one user.
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity. The ID is assigned by the store.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
