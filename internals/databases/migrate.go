package database

import (
	"log"

	claimModel "vanadhikar_backend/internals/features/claims/model"
	notificationModel "vanadhikar_backend/internals/features/notifications/model"
	officerModel "vanadhikar_backend/internals/features/officers/model"
	claimantModel "vanadhikar_backend/internals/features/users/claimant/model"
)

// Migrate keeps the schema in step with the models. gen_random_uuid()
// needs pgcrypto on Postgres < 13.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}

	if err := DB.AutoMigrate(
		&claimantModel.Claimant{},
		&officerModel.Officer{},
		&claimModel.Claim{},
		&claimModel.ClaimTransition{},
		&claimModel.FraCounter{},
		&notificationModel.Notification{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Migration complete.")
}
