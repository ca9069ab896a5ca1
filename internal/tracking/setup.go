package tracking

import (
	"log"
	"os"

	"github.com/HavenWatch/HW-Backend/internal/alerts"
	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
)

// Package-level collaborators wired in Init(), after the fences, staffing
// and alerts modules have initialized theirs.
var (
	ActiveStore    MembershipStore
	ActiveDetector *Detector
	ActiveCache    PositionStore
)

func Init() {
	if err := db.EnsureSchema(db.DB, "tracking"); err != nil {
		log.Fatal("Failed to ensure schema tracking: ", err)
	}

	if err := db.DB.AutoMigrate(&FenceLog{}); err != nil {
		log.Fatal("Failed to auto-migrate tracking tables: ", err)
	}

	// Database-level backstop for the single-open-record invariant.
	if err := db.DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS fence_logs_one_open_per_subject
		ON tracking.fence_logs (subject_id) WHERE exited_at IS NULL;
	`).Error; err != nil {
		log.Fatal("Failed to create fence_logs_one_open_per_subject: ", err)
	}

	ActiveStore = GormStore{}
	ActiveDetector = NewDetector(
		ActiveStore,
		fences.SnapshotSource{},
		staffing.RosterSource{},
		staffing.ActiveRanker,
		alerts.Pipeline{Dispatcher: alerts.ActiveDispatcher},
	)

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ActiveCache = NewRedisPositionCache(addr, os.Getenv("REDIS_PASSWORD"))
		ActiveDetector.SetPositionCache(ActiveCache)
		log.Printf("[tracking] position cache enabled at %s", addr)
	}

	log.Println("Tracking module initialized")
}
