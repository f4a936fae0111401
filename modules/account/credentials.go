package account

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/authkit/handler"
	"github.com/dmitrymomot/authkit/pkg/binder"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/svc/auth"
)

// LogoutMessage is returned in the body of a successful logout.
const LogoutMessage = "User successfully signed out"

// AuthService is the subset of auth.Service the HTTP flows depend on.
type AuthService interface {
	SignUp(ctx context.Context, email, name, password string) (*auth.Session, error)
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	CheckAuth(ctx context.Context) (auth.Principal, error)
	Logout(ctx context.Context)
}

// Credentials serves the email and password flows.
type Credentials struct {
	auth         AuthService
	transport    session.Transport
	guard        func(http.Handler) http.Handler
	errorHandler handler.ErrorHandler
}

type Option func(*Credentials)

// WithErrorHandler replaces the default JSON error handler.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(c *Credentials) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// NewCredentials wires the flows. guard protects the check route.
func NewCredentials(svc AuthService, transport session.Transport, guard func(http.Handler) http.Handler, opts ...Option) *Credentials {
	c := &Credentials{
		auth:         svc,
		transport:    transport,
		guard:        guard,
		errorHandler: handler.NewErrorHandler(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Credentials) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/signup", handler.Wrap(c.signUp,
		handler.WithBinders(binder.JSON()),
		handler.WithErrorHandler(c.errorHandler),
	))
	r.Post("/signin", handler.Wrap(c.signIn,
		handler.WithBinders(binder.JSON()),
		handler.WithErrorHandler(c.errorHandler),
	))
	r.Post("/logout", handler.Wrap(c.logout,
		handler.WithErrorHandler(c.errorHandler),
	))
	r.With(c.guard).Get("/check", handler.Wrap(c.check,
		handler.WithErrorHandler(c.errorHandler),
	))

	return r
}

func (c *Credentials) signUp(ctx handler.Context, req signUpRequest) handler.Response {
	if err := req.validate(); err != nil {
		return handler.Error(err)
	}

	sess, err := c.auth.SignUp(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	if err := c.transport.SetToken(ctx.ResponseWriter(), sess.Token); err != nil {
		return handler.Error(err)
	}

	return handler.Created(userResponse{User: sess.Principal})
}

func (c *Credentials) signIn(ctx handler.Context, req signInRequest) handler.Response {
	if err := req.validate(); err != nil {
		return handler.Error(err)
	}

	sess, err := c.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	if err := c.transport.SetToken(ctx.ResponseWriter(), sess.Token); err != nil {
		return handler.Error(err)
	}

	return handler.OK(userResponse{User: sess.Principal})
}

func (c *Credentials) logout(ctx handler.Context, _ struct{}) handler.Response {
	c.auth.Logout(ctx)
	c.transport.ClearToken(ctx.ResponseWriter())
	return handler.OK(messageResponse{Message: LogoutMessage})
}

func (c *Credentials) check(ctx handler.Context, _ struct{}) handler.Response {
	principal, err := c.auth.CheckAuth(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.OK(userResponse{User: principal})
}
