package fences

import (
	"log"

	"github.com/HavenWatch/HW-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "fencing"); err != nil {
		log.Fatal("Failed to ensure schema fencing: ", err)
	}

	if err := db.DB.AutoMigrate(&Fence{}); err != nil {
		log.Fatal("Failed to auto-migrate fencing tables: ", err)
	}

	log.Println("Fencing module initialized")
}
