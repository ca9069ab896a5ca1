package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/HavenWatch/HW-Backend/internal/alerts"
	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/middleware"
	"github.com/HavenWatch/HW-Backend/internal/residents"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"github.com/HavenWatch/HW-Backend/internal/tracking"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	fences.Init()
	staffing.Init()
	residents.Init()
	alerts.Init()
	tracking.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/fences", fences.SetupRoutes())
	r.Mount("/staffing", staffing.SetupRoutes())
	r.Mount("/residents", residents.SetupRoutes())
	r.Mount("/alerts", alerts.SetupRoutes())
	r.Mount("/tracking", tracking.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
