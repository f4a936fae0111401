// Package sanitizer normalises user-supplied identity fields before they are
// validated, compared or stored.
package sanitizer

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address so
// that lookups and the uniqueness constraint treat "Bob@X.com" and
// "bob@x.com" as the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims the display name and collapses internal runs of
// whitespace to a single space.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
