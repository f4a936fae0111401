package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/cookie"
)

func TestManager_Set(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "session", "value"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "session", c.Name)
		assert.Equal(t, "value", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("per call options override defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithSecure(true), cookie.WithSameSite(http.SameSiteStrictMode))
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, "session", "value", cookie.WithMaxAge(60), cookie.WithDomain("example.com")))

		c := w.Result().Cookies()[0]
		assert.Equal(t, 60, c.MaxAge)
		assert.Equal(t, "example.com", c.Domain)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)

		// defaults are untouched by per-call options
		w = httptest.NewRecorder()
		require.NoError(t, m.Set(w, "session", "value"))
		c = w.Result().Cookies()[0]
		assert.Equal(t, 0, c.MaxAge)
		assert.Empty(t, c.Domain)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		err := cookie.New().Set(httptest.NewRecorder(), "", "value")
		assert.ErrorIs(t, err, cookie.ErrInvalidName)
	})
}

func TestManager_Get(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "session", Value: "abc"})
	v, err := m.Get(r, "session")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "session")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithSecure(true), cookie.WithSameSite(http.SameSiteStrictMode))
	w := httptest.NewRecorder()
	m.Delete(w, "session")

	c := w.Result().Cookies()[0]
	assert.Equal(t, "session", c.Name)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
	assert.True(t, c.Expires.Before(time.Now()))
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}
