package database

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"folio/models"
)

// EnsureAdminUser creates the admin account on startup when ADMIN_NAME,
// ADMIN_MAIL and ADMIN_PASSWORD are set. It is an explicit, idempotent
// step keyed on the email, not a connection side effect: running it twice
// changes nothing. A failure is logged but never aborts startup.
func EnsureAdminUser(db *gorm.DB) {
	name := os.Getenv("ADMIN_NAME")
	email := os.Getenv("ADMIN_MAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if name == "" || email == "" || password == "" {
		log.Println("Admin credentials not set, skipping admin bootstrap")
		return
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Printf("Error checking for admin user: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return
	}

	log.Printf("Admin user created: %s", email)
}
