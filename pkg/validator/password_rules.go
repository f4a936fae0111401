package validator

import (
	"regexp"
	"strings"
)

// PasswordSymbols is the set of special characters accepted in passwords.
const PasswordSymbols = "@$!%*#?&"

var (
	letterRegex          = regexp.MustCompile(`[A-Za-z]`)
	digitRegex           = regexp.MustCompile(`\d`)
	passwordCharsetRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]+$`)
)

func PasswordLetter(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return letterRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "password must contain at least one letter"},
	}
}

func PasswordDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{Field: field, Message: "password must contain at least one digit"},
	}
}

func PasswordSpecialChar(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, PasswordSymbols)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password must contain at least one special character (" + PasswordSymbols + ")",
		},
	}
}

// PasswordCharset rejects characters outside letters, digits and PasswordSymbols.
func PasswordCharset(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return passwordCharsetRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "password may only contain letters, digits and " + PasswordSymbols,
		},
	}
}
