package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
)

// SessionCookie is the cookie carrying the login session token.
const SessionCookie = "session_token"

// SessionValidator resolves a session token to the phone it is bound to.
type SessionValidator interface {
	Phone(ctx context.Context, token string) (string, bool)
}

type contextKey string

// PhoneContextKey carries the authenticated phone through the request context.
const PhoneContextKey contextKey = "phone"

// SessionPhone returns the authenticated phone from the request context, set
// by RequireSession.
func SessionPhone(r *http.Request) string {
	phone, _ := r.Context().Value(PhoneContextKey).(string)
	return phone
}

// RequireSession redirects to the login page when the request carries no
// valid session, and otherwise stores the phone in the request context.
func RequireSession(sessions SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login.html", http.StatusSeeOther)
				return
			}
			phone, ok := sessions.Phone(r.Context(), cookie.Value)
			if !ok {
				http.Redirect(w, r, "/login.html", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), PhoneContextKey, phone)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminBasicAuth gates admin routes with HTTP Basic against the two static
// configured values. No session state: credentials must be presented on
// every request.
func AdminBasicAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok ||
				subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(password)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="Login Required"`)
				http.Error(w, "Could not verify your access level for that URL.\nYou must login with proper credentials.", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
