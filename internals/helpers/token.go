package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetClaimantIDFromToken reads c.Locals("claimant_id") as set by the
// claimant auth middleware. 401 when not logged in, 400 on a bad id.
func GetClaimantIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "claimant_id", "Claimant is not logged in")
}

// GetOfficerIDFromToken reads c.Locals("officer_id") as set by the officer
// auth middlewares.
func GetOfficerIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, "officer_id", "Officer is not logged in")
}

// GetOfficerRoleFromToken reads c.Locals("officer_role").
func GetOfficerRoleFromToken(c *fiber.Ctx) (string, error) {
	v, _ := c.Locals("officer_role").(string)
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role information")
	}
	return v, nil
}

// GetLocalString returns a trimmed string local ("" when unset).
func GetLocalString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return strings.TrimSpace(v)
}

func localsUUID(c *fiber.Ctx, key, missingMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id in token")
	}
}
