package auth

import (
	"errors"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/pkg/validator"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrPrincipalMissing   = errors.New("principal missing from context")
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	// KindInternal covers storage failures, hashing and signing failures and
	// anything not classified otherwise.
	KindInternal Kind = iota
	// KindValidation means the input was rejected before any work was done.
	KindValidation
	// KindConflict means the email is already registered.
	KindConflict
	// KindUnauthenticated means missing, invalid or expired credentials.
	KindUnauthenticated
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "unauthenticated"
	default:
		return "internal"
	}
}

// KindOf classifies err by walking its chain.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case validator.IsValidationError(err),
		errors.Is(err, password.ErrPasswordTooLong),
		errors.Is(err, password.ErrEmptyPassword):
		return KindValidation
	case errors.Is(err, ErrEmailAlreadyExists):
		return KindConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrPrincipalMissing),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrExpiredToken),
		errors.Is(err, session.ErrTokenNotFound):
		return KindUnauthenticated
	default:
		return KindInternal
	}
}

// PublicMessage returns the text a client may see for err.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case KindValidation:
		return "Validation failed"
	case KindConflict:
		return "User with this email already exists"
	case KindUnauthenticated:
		if errors.Is(err, ErrInvalidCredentials) {
			return "Invalid credentials"
		}
		return "Unauthorized"
	default:
		return "Internal server error"
	}
}
