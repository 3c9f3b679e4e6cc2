package routes

import (
	"github.com/go-chi/chi/v5"

	"skyops/crewboard/internal/api"
	"skyops/crewboard/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(deps.Metrics))

		// Snapshot views, all filterable with ?date=
		v1.Get("/dashboard", handlers.GetDashboard())
		v1.Get("/summary", handlers.GetSummary())
		v1.Get("/aircraft", handlers.GetAircraft())
		v1.Get("/crew", handlers.GetCrew())
		v1.Get("/crew/rotations", handlers.GetRotations())
		v1.Get("/utilization", handlers.GetUtilization())
		v1.Get("/rolling", handlers.GetRollingHours())
		v1.Get("/schedule", handlers.GetSchedule())

		v1.Get("/uploads", handlers.GetRecentUploads())

		// Mutating routes are rate limited per client IP
		v1.Group(func(ingest chi.Router) {
			ingest.Use(middleware.RateLimitMiddleware)
			ingest.Post("/upload/{reportType}", handlers.UploadReport())
			ingest.Post("/refresh", handlers.RefreshReports())
		})
	})
}
