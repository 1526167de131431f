package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimTransition is the append-only audit trail. One row per accepted
// transition; never updated or deleted.
type ClaimTransition struct {
	TransitionID uuid.UUID `gorm:"column:transition_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transition_id"`

	TransitionClaimID uuid.UUID `gorm:"column:transition_claim_id;type:uuid;not null;index" json:"transition_claim_id"`

	TransitionFromStatus ClaimStatus `gorm:"column:transition_from_status;type:varchar(30);not null" json:"transition_from_status"`
	TransitionToStatus   ClaimStatus `gorm:"column:transition_to_status;type:varchar(30);not null" json:"transition_to_status"`
	TransitionAction     ClaimAction `gorm:"column:transition_action;type:varchar(30);not null" json:"transition_action"`

	TransitionOfficerID   uuid.UUID `gorm:"column:transition_officer_id;type:uuid;not null" json:"transition_officer_id"`
	TransitionOfficerRole string    `gorm:"column:transition_officer_role;type:varchar(30);not null" json:"transition_officer_role"`

	TransitionRemarks string `gorm:"column:transition_remarks;type:text" json:"transition_remarks"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (ClaimTransition) TableName() string {
	return "claim_transitions"
}
