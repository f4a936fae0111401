// Package cookie sets, reads and deletes HTTP cookies with shared default
// attributes.
//
// A Manager holds the default Options (path, domain, max-age and the
// Secure/HttpOnly/SameSite flags). Per-call options override the defaults for
// that call only.
//
//	m := cookie.New(
//		cookie.WithPath("/"),
//		cookie.WithHTTPOnly(true),
//		cookie.WithSameSite(http.SameSiteLaxMode),
//	)
//	m.Set(w, "access_token", token, cookie.WithMaxAge(86400))
package cookie
