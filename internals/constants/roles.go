package constants

import "fmt"

// Role vocabulary. The officer roles mirror the tiers of the Forest Rights
// Act review chain; district_officer/block_officer are the legacy login ids
// still used by older dashboard builds.
const (
	RoleClaimant        = "claimant"
	RoleGramSabha       = "GramSabha"
	RoleSDLCOfficer     = "SDLCOfficer"
	RoleBlockOfficer    = "block_officer"
	RoleDLCOfficer      = "DLCOfficer"
	RoleDistrictOfficer = "district_officer"
	RoleSuperAdmin      = "SuperAdmin"
)

// Error message templates per tier
const (
	ErrOnlyGramSabhaCanAccess   = "Only Gram Sabha officers may access %s."
	ErrOnlySubdivisionCanAccess = "Only subdivision (SDLC) officers may access %s."
	ErrOnlyDistrictCanAccess    = "Only district (DLC) officers may access %s."
	ErrOnlySuperAdminCanAccess  = "Only SuperAdmin may access %s."
)

func RoleErrorGramSabha(feature string) string {
	return fmt.Sprintf(ErrOnlyGramSabhaCanAccess, feature)
}

func RoleErrorSubdivision(feature string) string {
	return fmt.Sprintf(ErrOnlySubdivisionCanAccess, feature)
}

func RoleErrorDistrict(feature string) string {
	return fmt.Sprintf(ErrOnlyDistrictCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllOfficerRoles = []string{
		RoleGramSabha,
		RoleSDLCOfficer,
		RoleBlockOfficer,
		RoleDLCOfficer,
		RoleDistrictOfficer,
		RoleSuperAdmin,
	}

	GramSabhaOnly = []string{
		RoleGramSabha,
	}

	SubdivisionRoles = []string{
		RoleSDLCOfficer,
		RoleBlockOfficer,
	}

	DistrictRoles = []string{
		RoleDLCOfficer,
		RoleDistrictOfficer,
	}

	// Full claim visibility, no jurisdiction filter.
	FullVisibilityRoles = []string{
		RoleDLCOfficer,
		RoleDistrictOfficer,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}
)
