package db

import (
	"fmt"
	"log"
	"os"

	"github.com/clinichq/clinic-app/models"
	"golang.org/x/crypto/bcrypt"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.StaffProfile{},
		&models.DoctorProfile{},
		&models.Patient{},
		&models.Batch{},
		&models.BatchMedicine{},
		&models.Prescription{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedAdmin()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedAdmin creates the bootstrap admin account from env when no admin
// exists yet. Signup itself is admin-gated, so the first account has to
// come from somewhere.
func seedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash bootstrap admin password: %v", err)
		return
	}

	admin := models.User{
		Name:       "Administrator",
		Email:      email,
		Password:   string(hashed),
		NationalID: os.Getenv("ADMIN_NATIONAL_ID"),
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed bootstrap admin: %v", err)
		return
	}
	log.Printf("Seeded bootstrap admin account %s", email)
}
