// Package auth implements credential-based authentication: account
// registration, password sign-in, signed session tokens carried in a cookie
// and a guard middleware that protects routes.
//
// # Components
//
// Service orchestrates sign-up and sign-in on top of three collaborators:
// a Storage holding user records, a PasswordHasher and a TokenIssuer.
// Guard is the net/http middleware that extracts the session token from the
// request, verifies it, reloads the user and attaches a Principal to the
// request context. Rejected requests never reach the wrapped handler.
//
// Three Storage implementations are provided. MemoryStorage suits tests and
// single-process development. MongoStorage relies on a unique index on
// email and PostgresStorage on a unique constraint; in both, the database
// constraint is what guarantees one account per email even when two
// sign-ups race past the service's existence check.
//
// # Errors
//
// Every error returned by the package classifies into a Kind via KindOf.
// The HTTP layer switches over Kind to pick a status code, and uses
// PublicMessage for the client-facing text so internal details never leak.
// Invalid credentials are reported identically whether the email is unknown
// or the password is wrong.
//
// # Sessions
//
// Tokens are stateless. Logging out clears the cookie on the client, but a
// copy of the token remains valid until it expires.
package auth
