package fences

import (
	"net/http"

	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Read access for any signed-in staff member
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))

		r.Get("/", ListFences)
		r.Get("/{fence_id}", GetFence)
	})

	// Admin routes - fence configuration changes
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.AdminMiddleware(sessionFetcher))

		r.Post("/", CreateFence)
		r.Put("/{fence_id}", UpdateFence)
		r.Delete("/{fence_id}", DeleteFence)
	})

	return r
}
