package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WorkflowSlot holds the most recent action taken by one officer tier.
// Each new action by the tier overwrites the slot; the append-only history
// lives in claim_transitions.
type WorkflowSlot struct {
	OfficerID *uuid.UUID `gorm:"column:id;type:uuid" json:"officer_id,omitempty"`
	Action    string     `gorm:"column:action;type:varchar(20)" json:"action,omitempty"`
	ActedAt   *time.Time `gorm:"column:acted_at" json:"acted_at,omitempty"`
	Remarks   string     `gorm:"column:remarks;type:text" json:"remarks,omitempty"`
}

type Claim struct {
	ClaimID uuid.UUID `gorm:"column:claim_id;type:uuid;default:gen_random_uuid();primaryKey" json:"claim_id"`

	// Human-readable permit id, FRA-<year>-<seq>, from the shared counter.
	ClaimFraPattaID string `gorm:"column:claim_fra_patta_id;type:varchar(20);not null;unique" json:"claim_fra_patta_id"`

	// Owner, immutable after creation.
	ClaimClaimantID uuid.UUID `gorm:"column:claim_claimant_id;type:uuid;not null;index" json:"claim_claimant_id"`

	ClaimType           string  `gorm:"column:claim_type;type:varchar(20);not null" json:"claim_type"` // Individual | Community
	ClaimForestLandArea float64 `gorm:"column:claim_forest_land_area" json:"claim_forest_land_area"`

	// Declared location. gp_code is derived once at creation and is the
	// jurisdiction key from then on; editing the strings never re-derives it.
	ClaimVillage       string `gorm:"column:claim_village;type:varchar(100)" json:"claim_village"`
	ClaimGramPanchayat string `gorm:"column:claim_gram_panchayat;type:varchar(100)" json:"claim_gram_panchayat"`
	ClaimTehsil        string `gorm:"column:claim_tehsil;type:varchar(100)" json:"claim_tehsil"`
	ClaimDistrict      string `gorm:"column:claim_district;type:varchar(100)" json:"claim_district"`
	ClaimGPCode        string `gorm:"column:claim_gp_code;type:varchar(20);index" json:"claim_gp_code"`

	// True when the GP-name lookup missed and the claim sits outside every
	// Gram Sabha listing until reassigned.
	ClaimJurisdictionPending bool `gorm:"column:claim_jurisdiction_pending;not null;default:false" json:"claim_jurisdiction_pending"`

	ClaimStatus ClaimStatus `gorm:"column:claim_status;type:varchar(30);not null;default:'Submitted';index" json:"claim_status"`

	// Optimistic-lock token; every transition is a compare-and-swap on it.
	ClaimVersion int `gorm:"column:claim_version;not null;default:1" json:"claim_version"`

	// Last action per tier.
	GsOfficer          WorkflowSlot `gorm:"embedded;embeddedPrefix:gs_officer_" json:"gs_officer"`
	SubdivisionOfficer WorkflowSlot `gorm:"embedded;embeddedPrefix:subdivision_officer_" json:"subdivision_officer"`
	DistrictOfficer    WorkflowSlot `gorm:"embedded;embeddedPrefix:district_officer_" json:"district_officer"`

	// Structured application payload, immutable business data.
	ClaimApplication datatypes.JSON `gorm:"column:claim_application;type:jsonb" json:"claim_application"`

	// Drawn polygon areas (opaque blob) + parsed total.
	ClaimMapData   datatypes.JSON `gorm:"column:claim_map_data;type:jsonb" json:"claim_map_data,omitempty"`
	ClaimTotalArea float64        `gorm:"column:claim_total_area" json:"claim_total_area"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Claim) TableName() string {
	return "claims"
}

// SlotForTier returns the workflow slot a tier writes to.
func (cl *Claim) SlotForTier(tier string) *WorkflowSlot {
	switch tier {
	case TierGramSabha:
		return &cl.GsOfficer
	case TierSubdivision:
		return &cl.SubdivisionOfficer
	case TierDistrict:
		return &cl.DistrictOfficer
	default:
		return nil
	}
}

// SlotColumnPrefix returns the column prefix of a tier's slot
// ("gs_officer_" etc.), "" for an unknown tier. Must stay in step with the
// embeddedPrefix tags above.
func SlotColumnPrefix(tier string) string {
	switch tier {
	case TierGramSabha:
		return "gs_officer_"
	case TierSubdivision:
		return "subdivision_officer_"
	case TierDistrict:
		return "district_officer_"
	default:
		return ""
	}
}
