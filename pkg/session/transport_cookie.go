package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/authkit/pkg/cookie"
	"github.com/dmitrymomot/authkit/pkg/environment"
)

// DefaultCookieName is the cookie used when none is configured.
const DefaultCookieName = "access_token"

// CookieTTL matches the session token lifetime.
const CookieTTL = 24 * time.Hour

// CookieTransport implements Transport using one fixed cookie.
type CookieTransport struct {
	cookies *cookie.Manager
	name    string
}

var _ Transport = (*CookieTransport)(nil)

// NewCookieTransport creates a cookie transport whose attributes are derived
// from env. Extra options are applied last and may override them.
func NewCookieTransport(name string, env environment.Environment, opts ...cookie.Option) *CookieTransport {
	if name == "" {
		name = DefaultCookieName
	}

	sameSite := http.SameSiteLaxMode
	if env.IsProduction() {
		sameSite = http.SameSiteStrictMode
	}

	base := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(env.IsProduction()),
		cookie.WithSameSite(sameSite),
	}

	return &CookieTransport{
		cookies: cookie.New(append(base, opts...)...),
		name:    name,
	}
}

// GetToken extracts the session token from the cookie.
// A missing or empty cookie yields ErrTokenNotFound.
func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.cookies.Get(r, t.name)
	if err != nil || token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// SetToken stores the session token in the cookie for CookieTTL.
func (t *CookieTransport) SetToken(w http.ResponseWriter, token string) error {
	return t.cookies.Set(w, t.name, token, cookie.WithMaxAge(int(CookieTTL.Seconds())))
}

// ClearToken overwrites the cookie with an empty, already expired value.
func (t *CookieTransport) ClearToken(w http.ResponseWriter) {
	t.cookies.Delete(w, t.name)
}
