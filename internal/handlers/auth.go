package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/shamiohaque/ueldo-backend/internal/apperrors"
	"github.com/shamiohaque/ueldo-backend/internal/middleware"
	"github.com/shamiohaque/ueldo-backend/internal/services"
)

// ResetCookie carries the pending-reset token between the forgot-password
// submit and the reset form.
const ResetCookie = "reset_token"

// Accounts is the credential-flow contract the auth handlers need.
type Accounts interface {
	Signup(ctx context.Context, phone, password string) error
	Login(ctx context.Context, phone, password string) error
	BeginReset(ctx context.Context, phone string) error
	CompleteReset(ctx context.Context, phone, newPassword string) error
}

// Sessions is the identity contract the auth handlers need.
type Sessions interface {
	Create(ctx context.Context, phone string) (string, error)
	Phone(ctx context.Context, token string) (string, bool)
	Destroy(ctx context.Context, token string) error
	CreateReset(ctx context.Context, phone string) (string, error)
	ResetPhone(ctx context.Context, token string) (string, bool)
	ClearReset(ctx context.Context, token string) error
}

// Flasher sets and consumes one-shot user-facing messages.
type Flasher interface {
	Set(ctx context.Context, w http.ResponseWriter, msg string)
	Take(ctx context.Context, w http.ResponseWriter, r *http.Request) string
}

// AuthHandler serves the signup/login/logout and password-reset form flows.
// Failures flash a message and redirect back to a sensible prior page.
type AuthHandler struct {
	accounts Accounts
	sessions Sessions
	flash    Flasher
}

func NewAuthHandler(accounts Accounts, sessions Sessions, flash Flasher) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, flash: flash}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	phone := r.FormValue("phone")
	password := r.FormValue("password")

	err := h.accounts.Signup(ctx, phone, password)
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		h.flash.Set(ctx, w, "Phone number already registered.")
		http.Redirect(w, r, "/signup.html", http.StatusSeeOther)
	case errors.Is(err, apperrors.ErrValidation):
		h.flash.Set(ctx, w, "Phone and password are required.")
		http.Redirect(w, r, "/signup.html", http.StatusSeeOther)
	case err != nil:
		log.Printf("signup: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
	default:
		h.flash.Set(ctx, w, "Account created! Please log in.")
		http.Redirect(w, r, "/login.html", http.StatusSeeOther)
	}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	phone := r.FormValue("phone")
	password := r.FormValue("password")

	if err := h.accounts.Login(ctx, phone, password); err != nil {
		h.flash.Set(ctx, w, "Invalid phone or password.")
		http.Redirect(w, r, "/login.html", http.StatusSeeOther)
		return
	}

	token, err := h.sessions.Create(ctx, phone)
	if err != nil {
		log.Printf("login: create session: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.SessionDuration.Seconds()),
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		h.sessions.Destroy(ctx, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}

// ForgotPassword handles POST /forgot-password: it marks a pending-reset
// identity for the phone and sends the user to the reset form. The identity
// is not a login session.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	phone := r.FormValue("phone")

	if err := h.accounts.BeginReset(ctx, phone); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.flash.Set(ctx, w, "No account found with that phone number.")
			http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
			return
		}
		log.Printf("forgot-password: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.CreateReset(ctx, phone)
	if err != nil {
		log.Printf("forgot-password: create reset: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ResetCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.ResetDuration.Seconds()),
		HttpOnly: true,
	})
	http.Redirect(w, r, "/reset-password", http.StatusSeeOther)
}

// ResetPassword handles POST /reset-password. Without a live pending-reset
// identity the attempt is rejected and the user restarts the flow.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	phone, ok := h.pendingResetPhone(ctx, r)
	if !ok {
		h.flash.Set(ctx, w, "Password reset session expired. Please start again.")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	err := h.accounts.CompleteReset(ctx, phone, r.FormValue("password"))
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		h.flash.Set(ctx, w, "Password is required.")
		http.Redirect(w, r, "/reset-password", http.StatusSeeOther)
		return
	case err != nil:
		log.Printf("reset-password: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	if cookie, err := r.Cookie(ResetCookie); err == nil {
		h.sessions.ClearReset(ctx, cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     ResetCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	h.flash.Set(ctx, w, "Password updated! Please log in.")
	http.Redirect(w, r, "/login.html", http.StatusSeeOther)
}

func (h *AuthHandler) pendingResetPhone(ctx context.Context, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(ResetCookie)
	if err != nil {
		return "", false
	}
	return h.sessions.ResetPhone(ctx, cookie.Value)
}
