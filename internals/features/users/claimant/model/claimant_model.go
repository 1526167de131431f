package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Claimant struct {
	ClaimantID uuid.UUID `gorm:"column:claimant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"claimant_id"`

	ClaimantName string `gorm:"column:claimant_name;type:varchar(100);not null" json:"claimant_name"`

	// Aadhaar-style 12-digit identity number, the claimant's login id.
	ClaimantAadhaar string `gorm:"column:claimant_aadhaar;type:varchar(12);not null;unique" json:"claimant_aadhaar"`

	ClaimantPhone string `gorm:"column:claimant_phone;type:varchar(15)" json:"claimant_phone"`
	ClaimantEmail string `gorm:"column:claimant_email;type:varchar(100)" json:"claimant_email,omitempty"`

	ClaimantPassword string `gorm:"column:claimant_password;type:text;not null" json:"-"`

	// Google subject id when the claimant linked sign-in-with-Google.
	ClaimantGoogleSub *string `gorm:"column:claimant_google_sub;type:varchar(64);unique" json:"-"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Claimant) TableName() string {
	return "claimants"
}
