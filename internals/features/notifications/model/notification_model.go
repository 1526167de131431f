package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification rows are written once (on claim creation) and only ever
// mutated to flip the read flag.
type Notification struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`

	// Recipient: a concrete officer when one matched at creation time, plus
	// the jurisdiction code so a later officer assignment still finds it.
	NotificationOfficerID *uuid.UUID `gorm:"column:notification_officer_id;type:uuid;index" json:"notification_officer_id,omitempty"`
	NotificationGPCode    string     `gorm:"column:notification_gp_code;type:varchar(20);index" json:"notification_gp_code"`

	NotificationType    string `gorm:"column:notification_type;type:varchar(30);not null" json:"notification_type"`
	NotificationTitle   string `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationMessage string `gorm:"column:notification_message;type:text" json:"notification_message"`

	NotificationClaimID uuid.UUID `gorm:"column:notification_claim_id;type:uuid;not null" json:"notification_claim_id"`

	NotificationRead   bool       `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

const TypeClaimSubmitted = "claim_submitted"
