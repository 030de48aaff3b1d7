package handlers

import (
	"net/http"

	"github.com/shamiohaque/ueldo-backend/internal/middleware"
	"github.com/shamiohaque/ueldo-backend/internal/templates"
)

// PageHandler renders the HTML pages. The session and admin gates run as
// middleware; only the reset form needs its own pending-reset check here.
type PageHandler struct {
	flash    Flasher
	sessions Sessions
}

func NewPageHandler(flash Flasher, sessions Sessions) *PageHandler {
	return &PageHandler{flash: flash, sessions: sessions}
}

// Index handles GET / (session-gated).
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "index.html", templates.PageData{Phone: middleware.SessionPhone(r)})
}

// Signup handles GET /signup.html.
func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "signup.html", templates.PageData{Flash: h.flash.Take(r.Context(), w, r)})
}

// Login handles GET /login.html.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "login.html", templates.PageData{Flash: h.flash.Take(r.Context(), w, r)})
}

// ForgotPassword handles GET /forgot-password.
func (h *PageHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "forgot_password.html", templates.PageData{Flash: h.flash.Take(r.Context(), w, r)})
}

// ResetPassword handles GET /reset-password. Without a live pending-reset
// identity the user is sent back to the start of the flow.
func (h *PageHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(ResetCookie)
	if err != nil {
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}
	if _, ok := h.sessions.ResetPhone(r.Context(), cookie.Value); !ok {
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}
	templates.Render(w, "reset_password.html", templates.PageData{Flash: h.flash.Take(r.Context(), w, r)})
}

// Competitions handles GET /competitions.html (session-gated).
func (h *PageHandler) Competitions(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "competitions.html", templates.PageData{Phone: middleware.SessionPhone(r)})
}

// Admin handles GET /admin.html (admin-gated).
func (h *PageHandler) Admin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "admin.html", templates.PageData{})
}
