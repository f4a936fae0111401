package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/environment"
	"github.com/dmitrymomot/authkit/pkg/jwt"
	"github.com/dmitrymomot/authkit/pkg/session"
	"github.com/dmitrymomot/authkit/svc/auth"
)

func protected(t *testing.T, g *auth.Guard) (http.Handler, *bool) {
	t.Helper()
	called := false
	h := g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		p, ok := auth.PrincipalFromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(p.Email + "|" + p.Name))
	}))
	return h, &called
}

func requestWithToken(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: token})
	}
	return r
}

func TestGuard(t *testing.T) {
	t.Parallel()

	transport := session.NewCookieTransport("", environment.Development)

	t.Run("valid session reaches handler with principal", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		sess, err := f.service.SignUp(context.Background(), "john@example.com", "John", "Secret1!")
		require.NoError(t, err)

		h, called := protected(t, auth.NewGuard(transport, f.issuer, f.storage))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(sess.Token))

		assert.True(t, *called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "john@example.com|John", rec.Body.String())
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		h, called := protected(t, auth.NewGuard(transport, f.issuer, f.storage))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(""))

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		sess, err := f.service.SignUp(context.Background(), "john@example.com", "John", "Secret1!")
		require.NoError(t, err)

		parts := strings.Split(sess.Token, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "xx"
		h, called := protected(t, auth.NewGuard(transport, f.issuer, f.storage))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(strings.Join(parts, ".")))

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		sess, err := f.service.SignUp(context.Background(), "john@example.com", "John", "Secret1!")
		require.NoError(t, err)

		later, err := jwt.NewIssuer(testSecret, jwt.WithClock(func() time.Time {
			return time.Now().Add(jwt.TokenTTL + time.Minute)
		}))
		require.NoError(t, err)

		var got error
		g := auth.NewGuard(transport, later, f.storage, auth.WithErrorResponder(func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusUnauthorized)
		}))
		h, called := protected(t, g)
		h.ServeHTTP(httptest.NewRecorder(), requestWithToken(sess.Token))

		assert.False(t, *called)
		assert.ErrorIs(t, got, auth.ErrTokenExpired)
		assert.Equal(t, auth.KindUnauthenticated, auth.KindOf(got))
	})

	t.Run("deleted user fails closed", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		sess, err := f.service.SignUp(context.Background(), "john@example.com", "John", "Secret1!")
		require.NoError(t, err)
		require.NoError(t, f.storage.DeleteUser(context.Background(), sess.UserID))

		h, called := protected(t, auth.NewGuard(transport, f.issuer, f.storage))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(sess.Token))

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non uuid subject", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		token, err := f.issuer.Issue("not-a-uuid")
		require.NoError(t, err)

		h, called := protected(t, auth.NewGuard(transport, f.issuer, f.storage))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(token))

		assert.False(t, *called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		id := uuid.New()
		token, err := f.issuer.Issue(id.String())
		require.NoError(t, err)

		store := new(MockStorage)
		store.On("GetUserByID", mock.Anything, id).Return(nil, errors.New("db down"))

		h, called := protected(t, auth.NewGuard(transport, f.issuer, store))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestWithToken(token))

		assert.False(t, *called)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
		store.AssertExpectations(t)
	})

	t.Run("rejections are counted", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		reg := prometheus.NewRegistry()
		g := auth.NewGuard(transport, f.issuer, f.storage, auth.WithGuardMetrics(auth.NewMetrics(reg)))

		h, _ := protected(t, g)
		h.ServeHTTP(httptest.NewRecorder(), requestWithToken(""))
		h.ServeHTTP(httptest.NewRecorder(), requestWithToken("garbage"))

		n, err := testutil.GatherAndCount(reg, "authkit_auth_guard_rejections_total")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
