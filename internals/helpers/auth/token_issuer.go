// internals/helpers/auth/token_issuer.go
package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"vanadhikar_backend/internals/configs"
)

const AccessTokenTTL = 24 * time.Hour

// SignToken signs an HS256 token with the process-wide secret. Callers fill
// sub/role/assignment claims; iat/exp are stamped here.
func SignToken(claims jwt.MapClaims) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(AccessTokenTTL).Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// SetAuthCookie writes the tier cookie. HTTPOnly + SameSite=None because
// the dashboards live on other origins.
func SetAuthCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(AccessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

// ClearAuthCookie expires the tier cookie.
func ClearAuthCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}
