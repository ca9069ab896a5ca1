package seeds

import (
	"fmt"
	"log"
	"time"

	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/staffing"
	"gorm.io/gorm"
)

func SeedStaff() error {
	now := time.Now()
	floor2 := "2"
	floor1 := "1"

	demoStaff := []staffing.StaffMember{
		{
			StaffID:     "staff-supervisor-1",
			Name:        "Mei Chen",
			Position:    "Shift Supervisor",
			Phone:       "+1-555-0101",
			Email:       "mei.chen@havenwatch.app",
			OnDuty:      true,
			Floor:       &floor2,
			FloorSeenAt: &now,
		},
		{
			StaffID:     "staff-senior-1",
			Name:        "Rosa Alvarez",
			Position:    "Senior Caregiver",
			Phone:       "+1-555-0102",
			Email:       "rosa.alvarez@havenwatch.app",
			OnDuty:      true,
			Floor:       &floor1,
			FloorSeenAt: &now,
		},
		{
			StaffID:  "staff-nurse-1",
			Name:     "David Okafor",
			Position: "Registered Nurse",
			Phone:    "+1-555-0103",
			Email:    "david.okafor@havenwatch.app",
			OnDuty:   true,
		},
		{
			StaffID:  "staff-caregiver-1",
			Name:     "Priya Nair",
			Position: "Caregiver",
			Email:    "priya.nair@havenwatch.app",
			OnDuty:   false,
		},
	}

	for _, member := range demoStaff {
		var existing staffing.StaffMember
		err := db.DB.First(&existing, "staff_id = ?", member.StaffID).Error

		if err == nil {
			log.Printf("⚠️ Staff member exists, skipping: %s", member.Name)
			continue
		} else if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("DB error on staff member %s: %w", member.Name, err)
		}

		if err := db.DB.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create staff member %s: %w", member.Name, err)
		}
	}

	log.Printf("✅ Seeded %d staff members", len(demoStaff))
	return nil
}
