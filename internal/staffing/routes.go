package staffing

import (
	"net/http"

	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))

		r.Get("/staff", ListStaff)
		r.Get("/staff/{staff_id}", GetStaff)
		r.Post("/staff/{staff_id}/location", ReportLocation)
	})

	// Admin routes - directory changes
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(sessionFetcher))

		r.Post("/staff", CreateStaff)
		r.Put("/staff/{staff_id}", UpdateStaff)
	})

	return r
}
