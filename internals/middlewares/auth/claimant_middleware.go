// internals/middlewares/auth/claimant_middleware.go
package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClaimantCookieName is the legacy cookie the claimant portal sets.
const ClaimantCookieName = "token"

// ClaimantAuthMiddleware verifies the claimant cookie token and stores the
// claimant identity in c.Locals.
func ClaimantAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractCookieToken(c, ClaimantCookieName)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Please login first")
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			log.Println("[ERROR] claimant token parse:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		sub := claimString(claims, "sub")
		if _, err := uuid.Parse(sub); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing claimant ID")
		}
		if claimString(claims, "role") != "claimant" {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden - Not a claimant token")
		}

		c.Locals("claimant_id", sub)
		c.Locals("claimant_name", claimString(claims, "name"))
		return c.Next()
	}
}
