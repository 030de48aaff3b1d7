package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/shamiohaque/ueldo-backend/internal/catalog"
	"github.com/shamiohaque/ueldo-backend/internal/config"
	"github.com/shamiohaque/ueldo-backend/internal/handlers"
	"github.com/shamiohaque/ueldo-backend/internal/middleware"
	"github.com/shamiohaque/ueldo-backend/internal/services"
)

// Deps carries everything the routes need, constructed in main and injected
// here.
type Deps struct {
	Cfg        *config.Config
	Redis      *redis.Client
	Sessions   *services.SessionManager
	Flash      *services.Flash
	Accounts   *services.AccountService
	Engine     *catalog.Engine
	Cloudinary *services.CloudinaryService // nil when not configured
}

func SetupRoutes(r *chi.Mux, d Deps) {
	auth := handlers.NewAuthHandler(d.Accounts, d.Sessions, d.Flash)
	pages := handlers.NewPageHandler(d.Flash, d.Sessions)
	comps := handlers.NewCompetitionHandler(d.Engine)
	admin := handlers.NewAdminHandler(d.Engine)

	sessionGate := middleware.RequireSession(d.Sessions)
	adminGate := middleware.AdminBasicAuth(d.Cfg.AdminUsername, d.Cfg.AdminPassword)
	authLimit := middleware.AuthRateLimit(d.Redis)

	// End-user pages behind the session gate
	r.Group(func(r chi.Router) {
		r.Use(sessionGate)
		r.Get("/", pages.Index)
		r.Get("/competitions.html", pages.Competitions)
	})

	// Public pages
	r.Get("/signup.html", pages.Signup)
	r.Get("/login.html", pages.Login)
	r.Get("/forgot-password", pages.ForgotPassword)
	r.Get("/reset-password", pages.ResetPassword)
	r.Get("/logout", auth.Logout)

	// Credential form endpoints, rate limited per IP
	r.Group(func(r chi.Router) {
		r.Use(authLimit)
		r.Post("/signup", auth.Signup)
		r.Post("/login", auth.Login)
		r.Post("/forgot-password", auth.ForgotPassword)
		r.Post("/reset-password", auth.ResetPassword)
	})

	// Public API
	r.Get("/api/competitions", comps.GetAll)

	// Admin surface: HTTP Basic on every request
	r.Group(func(r chi.Router) {
		r.Use(adminGate)
		r.Get("/admin.html", pages.Admin)
		r.Get("/admin/competitions", admin.List)
		r.Post("/admin/competitions", admin.Create)
		r.Put("/admin/competitions/{id}", admin.Update)
		r.Delete("/admin/competitions/{id}", admin.Delete)
		if d.Cloudinary != nil {
			upload := handlers.NewUploadHandler(d.Cloudinary)
			r.Post("/admin/upload", upload.Upload)
		}
	})
}
