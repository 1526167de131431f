package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Officer is the single polymorphic official entity, typed by role.
// Assignment fields are role-dependent: Gram Sabha officers carry a gp code
// (and village), subdivision officers a subdivision, district officers a
// district. SuperAdmin carries none.
type Officer struct {
	OfficerID uuid.UUID `gorm:"column:officer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"officer_id"`

	OfficerName     string `gorm:"column:officer_name;type:varchar(100);not null" json:"officer_name"`
	OfficerLoginID  string `gorm:"column:officer_login_id;type:varchar(100);not null;unique" json:"officer_login_id"`
	OfficerPassword string `gorm:"column:officer_password;type:text;not null" json:"-"`

	OfficerRole string `gorm:"column:officer_role;type:varchar(30);not null;index" json:"officer_role"`

	OfficerDistrict      string `gorm:"column:officer_district;type:varchar(100)" json:"officer_district,omitempty"`
	OfficerSubdivision   string `gorm:"column:officer_subdivision;type:varchar(100)" json:"officer_subdivision,omitempty"`
	OfficerGramPanchayat string `gorm:"column:officer_gram_panchayat;type:varchar(100)" json:"officer_gram_panchayat,omitempty"`
	OfficerGPCode        string `gorm:"column:officer_gp_code;type:varchar(20);index" json:"officer_gp_code,omitempty"`
	OfficerVillage       string `gorm:"column:officer_village;type:varchar(100)" json:"officer_village,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Officer) TableName() string {
	return "officers"
}
