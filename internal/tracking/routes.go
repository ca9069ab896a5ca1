package tracking

import (
	"net/http"

	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Ping ingestion: posted by tracker gateways, not browsers. Rate
	// limited per source; allows bursts when a gateway flushes a backlog.
	pingLimiter := middleware.NewRateLimiter(20, 60)
	r.Group(func(r chi.Router) {
		r.Use(pingLimiter.Middleware)
		r.Post("/positions", ProcessPositionHandler)
	})

	// Dashboard queries
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))

		r.Get("/subjects/{subject_id}/status", SubjectStatusHandler)
		r.Get("/subjects/{subject_id}/history", SubjectHistoryHandler)
	})

	return r
}
