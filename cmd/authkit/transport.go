package main

import (
	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// newSessionTransport builds the cookie transport. Without AUTH_COOKIE_DOMAIN
// the cookie is host-only.
func newSessionTransport(cfg appConfig, env environment.Environment) *session.CookieTransport {
	var opts []cookie.Option
	if cfg.CookieDomain != "" {
		opts = append(opts, cookie.WithDomain(cfg.CookieDomain))
	}
	return session.NewCookieTransport(cfg.CookieName, env, opts...)
}
