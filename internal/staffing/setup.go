package staffing

import (
	"log"
	"os"

	"github.com/HavenWatch/HW-Backend/internal/db"
)

// ActiveRanker is the responder ranking engine used by the tracking module.
// It is initialized in Init() from ROLE_KEYWORDS_FILE when set, otherwise
// from the compiled-in keyword defaults.
var ActiveRanker *Ranker

func Init() {
	if err := db.EnsureSchema(db.DB, "staffing"); err != nil {
		log.Fatal("Failed to ensure schema staffing: ", err)
	}

	if err := db.DB.AutoMigrate(&StaffMember{}); err != nil {
		log.Fatal("Failed to auto-migrate staffing tables: ", err)
	}

	keywords := DefaultRoleKeywords()
	if path := os.Getenv("ROLE_KEYWORDS_FILE"); path != "" {
		loaded, err := LoadRoleKeywords(path)
		if err != nil {
			log.Printf("[staffing] WARNING: %v; using default role keywords", err)
		} else {
			keywords = loaded
			log.Printf("[staffing] Loaded role keywords from %s", path)
		}
	}
	ActiveRanker = NewRanker(keywords)

	log.Println("Staffing module initialized")
}
