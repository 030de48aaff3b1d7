package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shamiohaque/ueldo-backend/internal/middleware"
)

type staticSessions map[string]string

func (s staticSessions) Phone(ctx context.Context, token string) (string, bool) {
	phone, ok := s[token]
	return phone, ok
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(middleware.SessionPhone(r)))
	})
}

func TestRequireSessionRedirectsWithoutCookie(t *testing.T) {
	gate := middleware.RequireSession(staticSessions{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	gate(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/login.html", rec.Header().Get("Location"))
}

func TestRequireSessionRedirectsOnUnknownToken(t *testing.T) {
	gate := middleware.RequireSession(staticSessions{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "expired"})
	rec := httptest.NewRecorder()
	gate(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRequireSessionPassesPhoneThrough(t *testing.T) {
	gate := middleware.RequireSession(staticSessions{"tok1": "0171"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok1"})
	rec := httptest.NewRecorder()
	gate(okHandler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "0171", rec.Body.String())
}

func TestAdminBasicAuthChallenge(t *testing.T) {
	gate := middleware.AdminBasicAuth("admin", "s3cret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/admin.html", nil)
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, `Basic realm="Login Required"`, rec.Header().Get("WWW-Authenticate"))
}

func TestAdminBasicAuthAccepts(t *testing.T) {
	gate := middleware.AdminBasicAuth("admin", "s3cret")
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/admin.html", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}
