package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored identity record.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the public view of an authenticated user.
type Principal struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Principal strips the user down to fields safe to expose.
func (u *User) Principal() Principal {
	return Principal{Email: u.Email, Name: u.Name}
}

// Session is the outcome of a successful sign-up or sign-in.
type Session struct {
	Token     string
	UserID    uuid.UUID
	Principal Principal
}
