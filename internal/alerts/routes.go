package alerts

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

		r.Get("/alarms", ListAlarms)
		r.Post("/alarms/{event_id}/ack", AckAlarm)
	})

	return r
}
