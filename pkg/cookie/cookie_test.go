package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatrack/pkg/cookie"
)

func TestManagerSet(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		cookie.New().Set(w, "__utma", "1.2.3.4.5.6")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, "__utma", c.Name)
		assert.Equal(t, "1.2.3.4.5.6", c.Value)
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, 0, c.MaxAge)
		assert.False(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("manager options", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(
			cookie.WithDomain("example.com"),
			cookie.WithPath("/shop"),
			cookie.WithSecure(true),
			cookie.WithHTTPOnly(true),
			cookie.WithSameSite(http.SameSiteStrictMode),
		)
		w := httptest.NewRecorder()
		m.Set(w, "a", "b")

		c := w.Result().Cookies()[0]
		assert.Equal(t, "example.com", c.Domain)
		assert.Equal(t, "/shop", c.Path)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	})

	t.Run("per call options do not change defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		m.Set(w, "a", "1", cookie.WithMaxAge(30*time.Minute))
		m.Set(w, "b", "2")

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, 1800, cookies[0].MaxAge)
		assert.Equal(t, 0, cookies[1].MaxAge)
	})

	t.Run("sub-second lifetime rounds up", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		cookie.New().Set(w, "a", "1", cookie.WithMaxAge(1500*time.Millisecond))
		assert.Equal(t, 2, w.Result().Cookies()[0].MaxAge)
	})
}

func TestManagerGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "__utmb", Value: "1.2.10.1330200000"})

	value, err := m.Get(req, "__utmb")
	require.NoError(t, err)
	assert.Equal(t, "1.2.10.1330200000", value)

	_, err = m.Get(req, "__utma")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManagerDelete(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	cookie.New(cookie.WithDomain("example.com")).Delete(w, "__utmb")

	c := w.Result().Cookies()[0]
	assert.Equal(t, "__utmb", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.Equal(t, "example.com", c.Domain)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		cookie.NewFromConfig(cookie.DefaultConfig()).Set(w, "a", "1")

		c := w.Result().Cookies()[0]
		assert.Equal(t, "/", c.Path)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("config values and override", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.Config{
			Domain:   "example.org",
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		}
		w := httptest.NewRecorder()
		cookie.NewFromConfig(cfg, cookie.WithPath("/app")).Set(w, "a", "1")

		c := w.Result().Cookies()[0]
		assert.Equal(t, "example.org", c.Domain)
		assert.Equal(t, "/app", c.Path)
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	})
}
