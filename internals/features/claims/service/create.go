package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/model"
)

// CreateClaimInput is the validated payload of a filing.
type CreateClaimInput struct {
	ClaimantID     uuid.UUID
	ClaimType      string
	ForestLandArea float64

	Village       string
	GramPanchayat string
	Tehsil        string
	District      string

	Application datatypes.JSON
}

// BlocksNewFiling decides the one-active-claim rule from the latest
// claim's status: only a terminal-rejected latest claim frees the claimant
// to file again. An unknown status string blocks rather than letting a
// claimant double-file past a row we cannot classify.
func BlocksNewFiling(status model.ClaimStatus) bool {
	normalized, ok := model.NormalizeStatus(string(status))
	if !ok {
		return true
	}
	return !normalized.IsRejected()
}

// FindBlockingClaim enforces the one-active-claim rule: returns the
// claimant's claim that blocks a new filing, or nil when filing is allowed
// (no claim yet, or the latest one ended rejected).
func FindBlockingClaim(db *gorm.DB, claimantID uuid.UUID) (*model.Claim, error) {
	var latest model.Claim
	err := db.Where("claim_claimant_id = ?", claimantID).
		Order("created_at DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if BlocksNewFiling(latest.ClaimStatus) {
		return &latest, nil
	}
	return nil, nil
}

// CreateClaim files a claim: invariant check, permit-id allocation, gpCode
// derivation, persist in Submitted, then a best-effort creation
// notification that never rolls the claim back.
func CreateClaim(db *gorm.DB, in CreateClaimInput) (*model.Claim, error) {
	if blocking, err := FindBlockingClaim(db, in.ClaimantID); err != nil {
		return nil, err
	} else if blocking != nil {
		return nil, &ActiveClaimError{Existing: blocking}
	}

	pattaID, err := AllocateFraPattaID(db)
	if err != nil {
		return nil, err
	}

	gpCode, matched := ResolveGPCode(in.Tehsil, in.GramPanchayat)
	if !matched {
		log.Printf("[WARN] no jurisdiction match for gram panchayat %q (tehsil %q), claim filed unassigned", in.GramPanchayat, in.Tehsil)
	}

	cl := model.Claim{
		ClaimFraPattaID:          pattaID,
		ClaimClaimantID:          in.ClaimantID,
		ClaimType:                in.ClaimType,
		ClaimForestLandArea:      in.ForestLandArea,
		ClaimVillage:             in.Village,
		ClaimGramPanchayat:       in.GramPanchayat,
		ClaimTehsil:              in.Tehsil,
		ClaimDistrict:            in.District,
		ClaimGPCode:              gpCode,
		ClaimJurisdictionPending: !matched,
		ClaimStatus:              model.StatusSubmitted,
		ClaimVersion:             1,
		ClaimApplication:         in.Application,
	}
	if err := db.Create(&cl).Error; err != nil {
		return nil, err
	}

	NotifyClaimCreated(db, &cl)

	return &cl, nil
}
