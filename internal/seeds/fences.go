package seeds

import (
	"fmt"
	"log"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/fences"
	"gorm.io/gorm"
)

var demoFences = []fences.Fence{
	{
		Name:        "Main Building",
		Description: "Ground floor and courtyard of the main residence",
		Boundary:    "31.2300,121.4700;31.2300,121.4760;31.2360,121.4760;31.2360,121.4700",
		Active:      true,
	},
	{
		Name:        "Memory Care Wing",
		Description: "Secured wing, east side",
		Boundary:    "31.2305,121.4762;31.2305,121.4790;31.2330,121.4790;31.2330,121.4762",
		Active:      true,
	},
	{
		Name:        "Garden",
		Description: "Outdoor garden, supervised hours only",
		Boundary:    "31.2362,121.4700;31.2362,121.4740;31.2390,121.4740;31.2390,121.4700",
		Active:      true,
	},
}

func SeedFences() error {
	for _, fence := range demoFences {
		var existing fences.Fence
		err := db.DB.First(&existing, "name = ?", fence.Name).Error

		if err == nil {
			log.Printf("⚠️ Fence exists, skipping: %s", fence.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on fence %s: %w", fence.Name, err)
		}

		if err := db.DB.Create(&fence).Error; err != nil {
			return fmt.Errorf("failed to create fence %s: %w", fence.Name, err)
		}
	}

	log.Printf("✅ Seeded %d fences", len(demoFences))
	return nil
}
