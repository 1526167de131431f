package dto

import (
	"encoding/json"

	"vanadhikar_backend/internals/features/claims/model"
)

/* ===============================
   Requests
=================================*/

// ApplicationPayload is the structured filing. Stored as-is in the claim's
// JSONB column; business data only, immutable after creation.
type ApplicationPayload struct {
	ApplicantName    string `json:"applicant_name" validate:"required"`
	SpouseName       string `json:"spouse_name"`
	FatherMotherName string `json:"father_mother_name"`
	AadhaarNumber    string `json:"aadhaar_number" validate:"required,len=12,numeric"`
	Address          string `json:"address" validate:"required"`

	IsScheduledTribe                bool           `json:"is_scheduled_tribe"`
	IsOtherTraditionalForestDweller bool           `json:"is_other_traditional_forest_dweller"`
	FamilyMembers                   []FamilyMember `json:"family_members" validate:"omitempty,dive"`

	LandExtent      LandExtent `json:"land_extent"`
	ClaimBasis      string     `json:"claim_basis" validate:"required"`
	EvidenceFiles   []string   `json:"evidence_files"`
	DeclarationTrue bool       `json:"declaration_true" validate:"required,eq=true"`
}

type FamilyMember struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"gte=0,lte=120"`
	Relation string `json:"relation"`
}

type LandExtent struct {
	ForHabitation      float64 `json:"for_habitation" validate:"gte=0"`
	ForSelfCultivation float64 `json:"for_self_cultivation" validate:"gte=0"`
	DisputedLands      float64 `json:"disputed_lands" validate:"gte=0"`
	PattasLeasesGrants float64 `json:"pattas_leases_grants" validate:"gte=0"`
}

type CreateClaimRequest struct {
	ClaimType      string  `json:"claim_type" validate:"required,oneof=Individual Community"`
	ForestLandArea float64 `json:"forest_land_area" validate:"required,gt=0"`

	Village       string `json:"village" validate:"required"`
	GramPanchayat string `json:"gram_panchayat" validate:"required"`
	Tehsil        string `json:"tehsil" validate:"required"`
	District      string `json:"district" validate:"required"`

	Application ApplicationPayload `json:"application" validate:"required"`
}

// SaveMapRequest carries the drawn geometry; the blob stays opaque, only
// the total is parsed.
type SaveMapRequest struct {
	MapData   json.RawMessage `json:"map_data" validate:"required"`
	TotalArea float64         `json:"total_area" validate:"required,gt=0"`
	Remarks   string          `json:"remarks"`
}

// RemarksRequest is every other transition's body.
type RemarksRequest struct {
	Remarks string `json:"remarks"`
}

/* ===============================
   Responses
=================================*/

type CreateClaimResponse struct {
	ClaimID             string `json:"claim_id"`
	FraPattaID          string `json:"fra_patta_id"`
	Status              string `json:"status"`
	JurisdictionPending bool   `json:"jurisdiction_pending"`
}

// ConflictClaim echoes the blocking claim on a duplicate filing so the
// portal can render "you already have a claim in progress".
type ConflictClaim struct {
	ClaimID    string `json:"claim_id"`
	FraPattaID string `json:"fra_patta_id"`
	Status     string `json:"status"`
}

func NewConflictClaim(cl *model.Claim) ConflictClaim {
	return ConflictClaim{
		ClaimID:    cl.ClaimID.String(),
		FraPattaID: cl.ClaimFraPattaID,
		Status:     string(cl.ClaimStatus),
	}
}

type ClaimListItem struct {
	ClaimID             string  `json:"claim_id"`
	FraPattaID          string  `json:"fra_patta_id"`
	Status              string  `json:"status"`
	ClaimType           string  `json:"claim_type"`
	Village             string  `json:"village"`
	GramPanchayat       string  `json:"gram_panchayat"`
	Tehsil              string  `json:"tehsil"`
	District            string  `json:"district"`
	GPCode              string  `json:"gp_code"`
	ForestLandArea      float64 `json:"forest_land_area"`
	TotalArea           float64 `json:"total_area"`
	JurisdictionPending bool    `json:"jurisdiction_pending"`
	CreatedAt           string  `json:"created_at"`
}

func NewClaimListItem(cl *model.Claim) ClaimListItem {
	return ClaimListItem{
		ClaimID:             cl.ClaimID.String(),
		FraPattaID:          cl.ClaimFraPattaID,
		Status:              string(cl.ClaimStatus),
		ClaimType:           cl.ClaimType,
		Village:             cl.ClaimVillage,
		GramPanchayat:       cl.ClaimGramPanchayat,
		Tehsil:              cl.ClaimTehsil,
		District:            cl.ClaimDistrict,
		GPCode:              cl.ClaimGPCode,
		ForestLandArea:      cl.ClaimForestLandArea,
		TotalArea:           cl.ClaimTotalArea,
		JurisdictionPending: cl.ClaimJurisdictionPending,
		CreatedAt:           cl.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ClaimDetail is the full read: the claim plus its append-only history.
type ClaimDetail struct {
	Claim   *model.Claim            `json:"claim"`
	History []model.ClaimTransition `json:"history"`
}
