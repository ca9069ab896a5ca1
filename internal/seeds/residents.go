package seeds

import (
	"fmt"
	"log"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/residents"
	"gorm.io/gorm"
)

var demoResidents = []residents.Resident{
	{ResidentID: "resident-001", Name: "Harold Greene", Room: "104", Floor: "1", Status: "active", Tracked: true},
	{ResidentID: "resident-002", Name: "Eleanor Whitfield", Room: "211", Floor: "2", Status: "active", Tracked: true},
	{ResidentID: "resident-003", Name: "Sam Ito", Room: "118", Floor: "1", Status: "active", Tracked: false, Note: "Opted out of tracking"},
}

func SeedResidents() error {
	for _, resident := range demoResidents {
		var existing residents.Resident
		err := db.DB.First(&existing, "resident_id = ?", resident.ResidentID).Error

		if err == nil {
			log.Printf("⚠️ Resident exists, skipping: %s", resident.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on resident %s: %w", resident.Name, err)
		}

		if err := db.DB.Create(&resident).Error; err != nil {
			return fmt.Errorf("failed to create resident %s: %w", resident.Name, err)
		}
	}

	log.Printf("✅ Seeded %d residents", len(demoResidents))
	return nil
}
