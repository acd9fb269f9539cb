package routes

import (
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/config"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything Setup mounts.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Admin  *handlers.AdminHandler
	HR     *handlers.HRHandler
	Shared *handlers.SharedHandler
	Health *handlers.HealthHandler
}

// Setup mounts every route on app. limitStore backs the rate limiters; nil
// keeps counters in memory.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authorizer *services.Authorizer,
	h Handlers,
	limitStore fiber.Storage,
) {
	app.Use(middleware.RateLimit("api", cfg.RateLimitMax, limitStore))

	app.Get("/health", h.Health.Check)

	// Public auth with a stricter per-IP limit.
	authLimit := middleware.RateLimit("auth", cfg.AuthRateLimitMax, limitStore)
	auth := app.Group("/auth")
	auth.Post("/register", authLimit, h.Auth.Register)
	auth.Post("/login", authLimit, h.Auth.Login)

	jwt := middleware.JWTProtected(cfg)
	identity := middleware.Identity(authService)

	auth.Get("/me", jwt, identity, h.Auth.Me)

	admin := app.Group("/admin", jwt, identity, middleware.RequireRole(authorizer, models.RoleAdmin))
	admin.Post("/add-job", h.Admin.AddJob)
	admin.Post("/add-jobs-bulk", h.Admin.AddJobsBulk)
	admin.Post("/upload-csv", h.Admin.UploadCSV)
	admin.Get("/jobs", h.Admin.ListJobs)
	admin.Put("/jobs/:code", h.Admin.UpdateJob)
	admin.Put("/jobs/:code/allocate", h.Admin.AllocateJob)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users", h.Admin.CreateUser)
	admin.Put("/users/:id", h.Admin.UpdateUser)
	admin.Delete("/users/:id", h.Admin.DeleteUser)
	admin.Get("/dashboard", h.Admin.Dashboard)
	admin.Get("/candidates", h.Admin.ListCandidates)

	hr := app.Group("/hr", jwt, identity, middleware.RequireRole(authorizer, models.RoleHR))
	hr.Get("/jobs", h.HR.ListJobs)
	hr.Put("/jobs/:code/status", h.HR.SetJobStatus)
	hr.Get("/candidates", h.HR.ListCandidates)
	hr.Get("/candidates/:job_code", h.HR.CandidatesForJob)
	hr.Put("/candidates/:id/status", h.HR.SetCandidateStatus)
	hr.Get("/dashboard", h.HR.Dashboard)

	// Shared routes carry the middleware per route so it never runs for
	// public paths.
	app.Get("/jobs/:id", jwt, identity, h.Shared.GetJob)
	app.Get("/candidates/:id", jwt, identity, h.Shared.GetCandidate)
	app.Post("/candidates", jwt, identity, h.Shared.CreateCandidate)
	app.Put("/candidates/:id", jwt, identity, h.Shared.UpdateCandidate)
	app.Put("/candidates/:id/status", jwt, identity, h.Shared.SetCandidateStatus)
	app.Get("/application-history/:candidate_id", jwt, identity, h.Shared.History)
}
