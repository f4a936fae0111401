// Package account exposes the credential authentication flows over HTTP.
//
// Routes mounted under /auth:
//
//	POST /auth/signup  register and open a session
//	POST /auth/signin  open a session for existing credentials
//	POST /auth/logout  clear the session cookie
//	GET  /auth/check   report the signed-in user (guarded)
//
// Request bodies are decoded with the strict JSON binder and validated here,
// before the auth service is called. Errors are rendered by the JSON error
// handler from the handler package.
//
// Usage:
//
//	credentials := account.NewCredentials(authService, transport, guard.Middleware,
//		account.WithErrorHandler(handler.NewErrorHandler(log)),
//	)
//	r.Mount("/", account.Router(account.RouterOptions{Credentials: credentials}))
package account
