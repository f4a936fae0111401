package auth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/validator"
	"github.com/dmitrymomot/authkit/svc/auth"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		kind    auth.Kind
		message string
	}{
		{name: "validation", err: validator.NewError("email", "bad"), kind: auth.KindValidation, message: "Validation failed"},
		{name: "password too long", err: password.ErrPasswordTooLong, kind: auth.KindValidation, message: "Validation failed"},
		{name: "conflict", err: auth.ErrEmailAlreadyExists, kind: auth.KindConflict, message: "User with this email already exists"},
		{name: "wrapped conflict", err: errors.Join(auth.ErrEmailAlreadyExists, errors.New("E11000")), kind: auth.KindConflict, message: "User with this email already exists"},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, kind: auth.KindUnauthenticated, message: "Invalid credentials"},
		{name: "missing cookie", err: session.ErrTokenNotFound, kind: auth.KindUnauthenticated, message: "Unauthorized"},
		{name: "expired", err: fmt.Errorf("verify: %w", jwt.ErrExpiredToken), kind: auth.KindUnauthenticated, message: "Unauthorized"},
		{name: "invalid token", err: jwt.ErrInvalidToken, kind: auth.KindUnauthenticated, message: "Unauthorized"},
		{name: "unknown", err: errors.New("disk full"), kind: auth.KindInternal, message: "Internal server error"},
		{name: "user not found alone", err: auth.ErrUserNotFound, kind: auth.KindInternal, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, auth.KindOf(tt.err))
			assert.Equal(t, tt.message, auth.PublicMessage(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "internal", auth.KindInternal.String())
	assert.Equal(t, "validation", auth.KindValidation.String())
	assert.Equal(t, "conflict", auth.KindConflict.String())
	assert.Equal(t, "unauthenticated", auth.KindUnauthenticated.String())
}
