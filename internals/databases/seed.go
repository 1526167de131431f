package database

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/constants"
	officerModel "vanadhikar_backend/internals/features/officers/model"
)

// SeedSuperAdmin makes sure one SuperAdmin login exists so a fresh deploy
// can register the officer hierarchy. Credentials come from ENV; nothing is
// seeded when SUPERADMIN_LOGIN_ID is absent.
func SeedSuperAdmin() {
	loginID := os.Getenv("SUPERADMIN_LOGIN_ID")
	password := os.Getenv("SUPERADMIN_PASSWORD")
	if loginID == "" || password == "" {
		log.Println("[WARN] SUPERADMIN_LOGIN_ID/PASSWORD not set, skipping seed")
		return
	}

	var existing officerModel.Officer
	err := DB.Where("officer_login_id = ?", loginID).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] SuperAdmin seed lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] SuperAdmin seed hash failed: %v", err)
		return
	}

	admin := officerModel.Officer{
		OfficerName:     "Super Admin",
		OfficerLoginID:  loginID,
		OfficerPassword: string(hash),
		OfficerRole:     constants.RoleSuperAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] SuperAdmin seed insert failed: %v", err)
		return
	}
	log.Println("[INFO] SuperAdmin seeded.")
}
