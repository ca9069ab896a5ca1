package residents

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

		r.Get("/", ListResidents)
		r.Get("/{resident_id}", GetResident)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(sessionFetcher))

		r.Post("/", CreateResident)
		r.Put("/{resident_id}", UpdateResident)
	})

	return r
}
