// internals/middlewares/auth/officer_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vanadhikar_backend/internals/constants"
)

// One cookie per officer tier. Older dashboard builds still send the
// block_officer / district_officer cookies, so both stay recognized.
const (
	GramSabhaCookieName       = "gs_token"
	BlockOfficerCookieName    = "block_officer_token"
	SubdivisionCookieName     = "subdivision_token"
	DistrictOfficerCookieName = "district_officer_token"
	SuperAdminCookieName      = "admin_token"
)

// CookieNameForRole maps an officer role to its tier cookie.
func CookieNameForRole(role string) string {
	switch role {
	case constants.RoleGramSabha:
		return GramSabhaCookieName
	case constants.RoleBlockOfficer:
		return BlockOfficerCookieName
	case constants.RoleSDLCOfficer:
		return SubdivisionCookieName
	case constants.RoleDLCOfficer, constants.RoleDistrictOfficer:
		return DistrictOfficerCookieName
	case constants.RoleSuperAdmin:
		return SuperAdminCookieName
	default:
		return ""
	}
}

// OfficerAuthMiddleware verifies the tier cookie and requires the embedded
// role to be one of allowedRoles; a role mismatch gets forbiddenMsg.
// Identity and assignment claims land in c.Locals for the controllers and
// the jurisdiction resolver.
func OfficerAuthMiddleware(cookieName, forbiddenMsg string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractCookieToken(c, cookieName)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Please login first")
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			log.Println("[ERROR] officer token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		sub := claimString(claims, "sub")
		if _, err := uuid.Parse(sub); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing officer ID")
		}

		role := claimString(claims, "role")
		allowed := false
		for _, r := range allowedRoles {
			if role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			return fiber.NewError(fiber.StatusForbidden, forbiddenMsg)
		}

		c.Locals("officer_id", sub)
		c.Locals("officer_role", role)
		c.Locals("officer_name", claimString(claims, "name"))
		c.Locals("officer_gp_code", claimString(claims, "gp_code"))
		c.Locals("officer_subdivision", claimString(claims, "subdivision"))
		c.Locals("officer_district", claimString(claims, "district"))
		return c.Next()
	}
}

// Shortcuts per tier. Each names the feature it guards so the 403 message
// tells the officer which tier the resource belongs to.

func GramSabhaOnly(feature string) fiber.Handler {
	return OfficerAuthMiddleware(GramSabhaCookieName, constants.RoleErrorGramSabha(feature), constants.GramSabhaOnly...)
}

func SubdivisionOnly(feature string) fiber.Handler {
	return OfficerAuthMiddleware(SubdivisionCookieName, constants.RoleErrorSubdivision(feature), constants.SubdivisionRoles...)
}

// BlockOfficerCompat serves the legacy block-officer dashboard, which sends
// its own cookie but exercises the subdivision routes.
func BlockOfficerCompat(feature string) fiber.Handler {
	return OfficerAuthMiddleware(BlockOfficerCookieName, constants.RoleErrorSubdivision(feature), constants.RoleBlockOfficer)
}

func DistrictOnly(feature string) fiber.Handler {
	return OfficerAuthMiddleware(DistrictOfficerCookieName, constants.RoleErrorDistrict(feature), constants.DistrictRoles...)
}

func SuperAdminOnly(feature string) fiber.Handler {
	return OfficerAuthMiddleware(SuperAdminCookieName, constants.RoleErrorSuperAdmin(feature), constants.SuperAdminOnly...)
}
