package auth

import (
	"context"

	"github.com/google/uuid"
)

// Storage persists user records keyed by email.
//
// CreateUser must fail with ErrEmailAlreadyExists when the email is taken,
// and must enforce that atomically: the existence check in Service is only
// a fast path. Lookups return ErrUserNotFound for missing records.
type Storage interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}
