package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/session"
)

// ErrorResponder writes an error response. The HTTP layer supplies it so
// guard rejections look exactly like handler errors.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// UserLoader reloads a user by id. Storage satisfies it.
type UserLoader interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// Guard is a middleware that admits only requests carrying a valid session.
type Guard struct {
	transport session.Transport
	tokens    TokenIssuer
	users     UserLoader
	respond   ErrorResponder
	logger    *slog.Logger
	metrics   *Metrics
}

type GuardOption func(*Guard)

func WithGuardLogger(l *slog.Logger) GuardOption {
	return func(g *Guard) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithGuardMetrics(m *Metrics) GuardOption {
	return func(g *Guard) { g.metrics = m }
}

// WithErrorResponder overrides how rejections are written.
func WithErrorResponder(fn ErrorResponder) GuardOption {
	return func(g *Guard) {
		if fn != nil {
			g.respond = fn
		}
	}
}

func NewGuard(transport session.Transport, tokens TokenIssuer, users UserLoader, opts ...GuardOption) *Guard {
	g := &Guard{
		transport: transport,
		tokens:    tokens,
		users:     users,
		respond:   plainErrorResponder,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(logger.Component("auth_guard"))
	return g
}

// Middleware rejects requests without a valid session and otherwise stores
// the caller's Principal in the request context.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := g.authenticate(r)
		if err != nil {
			g.respond(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetPrincipalToContext(r.Context(), principal)))
	})
}

func (g *Guard) authenticate(r *http.Request) (Principal, error) {
	ctx := r.Context()

	token, err := g.transport.GetToken(r)
	if err != nil {
		g.metrics.reject("missing_token")
		return Principal{}, errors.Join(ErrTokenNotFound, err)
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		reason, cause := "invalid_token", ErrTokenInvalid
		if errors.Is(err, jwt.ErrExpiredToken) {
			reason, cause = "expired_token", ErrTokenExpired
		}
		g.metrics.reject(reason)
		g.logger.DebugContext(ctx, "session token rejected", logger.Error(err))
		return Principal{}, errors.Join(cause, err)
	}

	id, err := uuid.Parse(claims.UserID())
	if err != nil {
		g.metrics.reject("invalid_token")
		return Principal{}, errors.Join(ErrTokenInvalid, err)
	}

	user, err := g.users.GetUserByID(ctx, id)
	switch {
	case errors.Is(err, ErrUserNotFound):
		// the account vanished after the token was issued
		g.metrics.reject("unknown_user")
		g.logger.WarnContext(ctx, "session token for missing user", logger.UserID(id.String()))
		return Principal{}, errors.Join(ErrUnauthorized, err)
	case err != nil:
		g.metrics.reject("storage_error")
		g.logger.ErrorContext(ctx, "failed to load session user", logger.UserID(id.String()), logger.Error(err))
		return Principal{}, err
	}

	return user.Principal(), nil
}

func plainErrorResponder(w http.ResponseWriter, _ *http.Request, err error) {
	status := http.StatusUnauthorized
	if KindOf(err) == KindInternal {
		status = http.StatusInternalServerError
	}
	http.Error(w, PublicMessage(err), status)
}
