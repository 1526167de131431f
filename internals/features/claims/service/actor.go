package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/constants"
	"vanadhikar_backend/internals/features/claims/model"
	helper "vanadhikar_backend/internals/helpers"
)

// Actor is the single source of truth for claim visibility. Every listing
// endpoint applies VisibilityScope, every detail read and mutation guard
// uses Matches; the two always agree because they come from the same
// variant.
type Actor interface {
	Role() string
	ActorID() uuid.UUID
	// VisibilityScope restricts a claims query to what the actor may read.
	VisibilityScope() func(*gorm.DB) *gorm.DB
	// Matches is the same predicate evaluated in memory against one claim.
	Matches(cl *model.Claim) bool
	// Tier names the workflow tier the actor acts as ("" for claimants).
	Tier() string
}

/* ===============================
   Variants
=================================*/

type ClaimantActor struct {
	ID uuid.UUID
}

func (a ClaimantActor) Role() string       { return constants.RoleClaimant }
func (a ClaimantActor) ActorID() uuid.UUID { return a.ID }
func (a ClaimantActor) Tier() string       { return "" }

func (a ClaimantActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("claim_claimant_id = ?", a.ID)
	}
}

func (a ClaimantActor) Matches(cl *model.Claim) bool {
	return cl.ClaimClaimantID == a.ID
}

type GramSabhaActor struct {
	ID     uuid.UUID
	GPCode string
}

func (a GramSabhaActor) Role() string       { return constants.RoleGramSabha }
func (a GramSabhaActor) ActorID() uuid.UUID { return a.ID }
func (a GramSabhaActor) Tier() string       { return model.TierGramSabha }

func (a GramSabhaActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	code := a.GPCode
	return func(db *gorm.DB) *gorm.DB {
		if code == "" {
			return db.Where("1 = 0")
		}
		return db.Where("claim_gp_code = ?", code)
	}
}

func (a GramSabhaActor) Matches(cl *model.Claim) bool {
	return a.GPCode != "" && cl.ClaimGPCode == a.GPCode
}

// SubdivisionActor covers SDLCOfficer and the legacy block_officer logins.
// Jurisdiction is a gp-code prefix match on the subdivision tag, the one
// predicate used for listing and mutation alike.
type SubdivisionActor struct {
	ID          uuid.UUID
	OfficerRole string
	Subdivision string
}

func (a SubdivisionActor) Role() string       { return a.OfficerRole }
func (a SubdivisionActor) ActorID() uuid.UUID { return a.ID }
func (a SubdivisionActor) Tier() string       { return model.TierSubdivision }

func (a SubdivisionActor) prefix() string {
	return constants.GPCodePrefixForTag(constants.SubdivisionTagForTehsil(a.Subdivision))
}

func (a SubdivisionActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	prefix := a.prefix()
	return func(db *gorm.DB) *gorm.DB {
		if prefix == "" {
			return db.Where("1 = 0")
		}
		return db.Where("claim_gp_code LIKE ?", prefix+"%")
	}
}

func (a SubdivisionActor) Matches(cl *model.Claim) bool {
	prefix := a.prefix()
	return prefix != "" && strings.HasPrefix(cl.ClaimGPCode, prefix)
}

// DistrictActor covers DLCOfficer and the legacy district_officer logins.
// Full visibility.
type DistrictActor struct {
	ID          uuid.UUID
	OfficerRole string
}

func (a DistrictActor) Role() string       { return a.OfficerRole }
func (a DistrictActor) ActorID() uuid.UUID { return a.ID }
func (a DistrictActor) Tier() string       { return model.TierDistrict }

func (a DistrictActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db }
}

func (a DistrictActor) Matches(cl *model.Claim) bool { return true }

type SuperAdminActor struct {
	ID uuid.UUID
}

func (a SuperAdminActor) Role() string       { return constants.RoleSuperAdmin }
func (a SuperAdminActor) ActorID() uuid.UUID { return a.ID }
func (a SuperAdminActor) Tier() string       { return "" }

func (a SuperAdminActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db }
}

func (a SuperAdminActor) Matches(cl *model.Claim) bool { return true }

// DeniedActor is the fail-closed fallback for unrecognized roles: it never
// errors, it just matches nothing.
type DeniedActor struct{}

func (DeniedActor) Role() string       { return "" }
func (DeniedActor) ActorID() uuid.UUID { return uuid.Nil }
func (DeniedActor) Tier() string       { return "" }

func (DeniedActor) VisibilityScope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Where("1 = 0") }
}

func (DeniedActor) Matches(cl *model.Claim) bool { return false }

/* ===============================
   Construction
=================================*/

// BuildOfficerActor maps a role + assignment to its actor variant.
// Unknown roles degrade to DeniedActor.
func BuildOfficerActor(id uuid.UUID, role, gpCode, subdivision string) Actor {
	switch role {
	case constants.RoleGramSabha:
		return GramSabhaActor{ID: id, GPCode: gpCode}
	case constants.RoleSDLCOfficer, constants.RoleBlockOfficer:
		return SubdivisionActor{ID: id, OfficerRole: role, Subdivision: subdivision}
	case constants.RoleDLCOfficer, constants.RoleDistrictOfficer:
		return DistrictActor{ID: id, OfficerRole: role}
	case constants.RoleSuperAdmin:
		return SuperAdminActor{ID: id}
	default:
		return DeniedActor{}
	}
}

// ActorFromOfficerLocals builds the acting officer from the middleware
// locals of the current request.
func ActorFromOfficerLocals(c *fiber.Ctx) (Actor, error) {
	id, err := helper.GetOfficerIDFromToken(c)
	if err != nil {
		return DeniedActor{}, err
	}
	role, err := helper.GetOfficerRoleFromToken(c)
	if err != nil {
		return DeniedActor{}, err
	}
	return BuildOfficerActor(
		id,
		role,
		helper.GetLocalString(c, "officer_gp_code"),
		helper.GetLocalString(c, "officer_subdivision"),
	), nil
}
