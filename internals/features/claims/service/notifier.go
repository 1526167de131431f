package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"vanadhikar_backend/internals/constants"
	"vanadhikar_backend/internals/features/claims/model"
	notificationModel "vanadhikar_backend/internals/features/notifications/model"
	officerModel "vanadhikar_backend/internals/features/officers/model"
)

// NotifyClaimCreated writes exactly one notification for the Gram Sabha
// officer whose jurisdiction code matches the new claim. Best effort: a
// missing officer or a failed insert is logged and skipped, never retried
// and never surfaced to the claimant.
func NotifyClaimCreated(db *gorm.DB, cl *model.Claim) {
	if cl.ClaimGPCode == "" {
		log.Printf("[WARN] claim %s has no gp code, skipping creation notification", cl.ClaimFraPattaID)
		return
	}

	var officer officerModel.Officer
	err := db.Where("officer_role = ? AND officer_gp_code = ?", constants.RoleGramSabha, cl.ClaimGPCode).
		First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] no Gram Sabha officer for gp code %s, skipping notification for claim %s", cl.ClaimGPCode, cl.ClaimFraPattaID)
		} else {
			log.Printf("[ERROR] officer lookup for claim %s notification: %v", cl.ClaimFraPattaID, err)
		}
		return
	}

	n := notificationModel.Notification{
		NotificationOfficerID: &officer.OfficerID,
		NotificationGPCode:    cl.ClaimGPCode,
		NotificationType:      notificationModel.TypeClaimSubmitted,
		NotificationTitle:     "New FRA claim submitted",
		NotificationMessage:   fmt.Sprintf("Claim %s was filed in %s (%s). Please verify and map the parcel.", cl.ClaimFraPattaID, cl.ClaimGramPanchayat, cl.ClaimVillage),
		NotificationClaimID:   cl.ClaimID,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] notification insert for claim %s: %v", cl.ClaimFraPattaID, err)
	}
}
