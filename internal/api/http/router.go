package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-portal/internal/api/http/handlers"
	"github.com/spec-kit/complaint-portal/internal/auth"
	"github.com/spec-kit/complaint-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Users           *handlers.UsersHandler
	Complaints      *handlers.ComplaintsHandler
	AdminComplaints *handlers.AdminComplaintsHandler
	AuthMiddleware  *auth.Middleware
}

// RegisterRoutes wires HTTP routes to the access policy: register/login are
// anonymous, logout accepts any caller, everything else rides behind the
// session middleware plus a role guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/logout", cfg.Users.Logout)

	complaints := app.Group("/complaints")
	complaints.Get("/meta", cfg.Complaints.Meta)
	complaints.Post("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Complaints.Submit)
	complaints.Get("", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleCitizen), cfg.Complaints.ListMine)

	account := app.Group("/account", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	account.Put("/region", cfg.Users.UpdateRegion)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/complaints", cfg.AdminComplaints.List)
	admin.Patch("/complaints/:id/status", cfg.AdminComplaints.UpdateStatus)
}
