package seeds

import (
	"fmt"
	"log"
	"os"

	"github.com/HavenWatch/HW-Backend/internal/auth"
	"github.com/HavenWatch/HW-Backend/internal/db"
	"github.com/HavenWatch/HW-Backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminUser creates the bootstrap admin account. The password comes from
// SEED_ADMIN_PASSWORD so demo databases never share a hardcoded credential.
func SeedAdminUser() error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD is not set")
	}

	var existing auth.User
	err := db.DB.First(&existing, "username = ?", "admin").Error

	if err == nil {
		log.Println("⚠️ Admin user exists, skipping")
		return nil
	} else if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("DB error on admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := auth.User{
		UserID:         utils.GenerateUUID(),
		Username:       "admin",
		HashedPassword: string(hashed),
		Role:           "admin",
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("✅ Seeded admin user")
	return nil
}
