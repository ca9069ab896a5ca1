package residents

import (
	"log"

	"github.com/HavenWatch/HW-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "care"); err != nil {
		log.Fatal("Failed to ensure schema care: ", err)
	}

	if err := db.DB.AutoMigrate(&Resident{}); err != nil {
		log.Fatal("Failed to auto-migrate care tables: ", err)
	}

	log.Println("Residents module initialized")
}
