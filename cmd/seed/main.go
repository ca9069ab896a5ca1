package main

import (
	"log"

	"github.com/HavenWatch/HW-Backend/internal/alerts"
	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/residents"
	"github.com/HavenWatch/HW-Backend/internal/seeds"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"github.com/HavenWatch/HW-Backend/internal/tracking"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	auth.Init()
	fences.Init()
	staffing.Init()
	residents.Init()
	alerts.Init()
	tracking.Init()

	if err := seeds.SeedAll(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
