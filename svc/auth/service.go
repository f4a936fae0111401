package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/logger"
	"github.com/dmitrymomot/authkit/pkg/sanitizer"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
	// VerifyDummy performs a comparison of the same cost as Verify and
	// always reports false.
	VerifyDummy(plain string) bool
}

// TokenIssuer creates and verifies session tokens.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (jwt.Claims, error)
}

// Service runs the sign-up and sign-in flows.
type Service struct {
	storage Storage
	hasher  PasswordHasher
	tokens  TokenIssuer
	logger  *slog.Logger
	metrics *Metrics
	now     func() time.Time
}

type ServiceOption func(*Service)

// WithServiceLogger sets the logger; without it the service logs nothing.
func WithServiceLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithServiceMetrics records operation outcomes into m.
func WithServiceMetrics(m *Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// WithServiceClock replaces time.Now for CreatedAt timestamps.
func WithServiceClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(storage Storage, hasher PasswordHasher, tokens TokenIssuer, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		hasher:  hasher,
		tokens:  tokens,
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("auth"))
	return s
}

// SignUp registers a new account and opens a session for it.
// Fails with ErrEmailAlreadyExists when the email is taken.
func (s *Service) SignUp(ctx context.Context, email, name, password string) (sess *Session, err error) {
	defer func() { s.metrics.observe("signup", err) }()

	email = sanitizer.NormalizeEmail(email)
	name = sanitizer.NormalizeName(name)
	log := s.logger.With(logger.Operation("signup"))

	_, err = s.storage.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.WarnContext(ctx, "sign up rejected: email already registered", logger.Email(email))
		return nil, ErrEmailAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		log.ErrorContext(ctx, "failed to check existing user", logger.Email(email), logger.Error(err))
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if KindOf(err) == KindValidation {
			return nil, err
		}
		log.ErrorContext(ctx, "failed to hash password", logger.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err = s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			// lost a race with a concurrent sign-up for the same email
			log.WarnContext(ctx, "sign up rejected by unique constraint", logger.Email(email))
			return nil, ErrEmailAlreadyExists
		}
		log.ErrorContext(ctx, "failed to create user", logger.Email(email), logger.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	sess, err = s.openSession(ctx, log, user)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "user signed up", logger.UserID(user.ID.String()))
	return sess, nil
}

// SignIn verifies credentials and opens a session.
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, email, password string) (sess *Session, err error) {
	defer func() { s.metrics.observe("signin", err) }()

	email = sanitizer.NormalizeEmail(email)
	log := s.logger.With(logger.Operation("signin"))

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.ErrorContext(ctx, "failed to load user", logger.Email(email), logger.Error(err))
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		s.hasher.VerifyDummy(password)
		log.WarnContext(ctx, "sign in rejected: unknown email", logger.Email(email))
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.WarnContext(ctx, "sign in rejected: wrong password", logger.UserID(user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	sess, err = s.openSession(ctx, log, user)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "user signed in", logger.UserID(user.ID.String()))
	return sess, nil
}

// CheckAuth returns the principal the guard attached to ctx.
func (s *Service) CheckAuth(ctx context.Context) (Principal, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return Principal{}, ErrPrincipalMissing
	}
	return p, nil
}

// Logout exists for symmetry with the other flows. Sessions are stateless,
// so there is nothing to revoke server side; the caller clears the cookie.
func (s *Service) Logout(ctx context.Context) {
	s.metrics.observe("logout", nil)
	s.logger.DebugContext(ctx, "user signed out", logger.Operation("logout"))
}

func (s *Service) openSession(ctx context.Context, log *slog.Logger, user *User) (*Session, error) {
	token, err := s.tokens.Issue(user.ID.String())
	if err != nil {
		log.ErrorContext(ctx, "failed to issue session token", logger.UserID(user.ID.String()), logger.Error(err))
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &Session{
		Token:     token,
		UserID:    user.ID,
		Principal: user.Principal(),
	}, nil
}
