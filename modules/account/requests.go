package account

import (
	"github.com/dmitrymomot/authkit/pkg/password"
	"github.com/dmitrymomot/authkit/pkg/sanitizer"
	"github.com/dmitrymomot/authkit/pkg/validator"
	"github.com/dmitrymomot/authkit/svc/auth"
)

// MinNameLength is the minimum display name length after whitespace is collapsed.
const MinNameLength = 3

// MinPasswordLength is the minimum number of characters in a new password.
const MinPasswordLength = 8

type signUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Messages shown to API clients. They match the wording the frontend
// already displays.
const (
	msgInvalidEmail     = "Please provide a valid email address"
	msgShortName        = "Name must be at least 3 characters long"
	msgShortPassword    = "Password must be at least 8 characters long"
	msgLongPassword     = "Password must be at most 72 bytes long"
	msgWeakPassword     = "Password must contain at least one letter, one number, and one special character"
	msgPasswordRequired = "Password is required"
)

func (r signUpRequest) validate() error {
	return validator.Apply(
		validator.ValidEmail("email", r.Email).WithMessage(msgInvalidEmail),
		validator.MinLenString("name", sanitizer.NormalizeName(r.Name), MinNameLength).WithMessage(msgShortName),
		validator.MinLenString("password", r.Password, MinPasswordLength).WithMessage(msgShortPassword),
		validator.MaxBytes("password", r.Password, password.MaxLength).WithMessage(msgLongPassword),
		validator.Combine("password", msgWeakPassword,
			validator.PasswordLetter("password", r.Password),
			validator.PasswordDigit("password", r.Password),
			validator.PasswordSpecialChar("password", r.Password),
			validator.PasswordCharset("password", r.Password),
		),
	)
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r signInRequest) validate() error {
	return validator.Apply(
		validator.ValidEmail("email", r.Email).WithMessage(msgInvalidEmail),
		validator.RequiredString("password", r.Password).WithMessage(msgPasswordRequired),
	)
}

type userResponse struct {
	User auth.Principal `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
