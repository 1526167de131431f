// internals/middlewares/auth/token_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"vanadhikar_backend/internals/configs"
)

var (
	errMissingToken = errors.New("missing token")
	errExpiredToken = errors.New("token expired")
)

// extractCookieToken reads the tier cookie, with an Authorization: Bearer
// fallback for API clients.
func extractCookieToken(c *fiber.Ctx, cookieName string) (string, error) {
	if tok := strings.TrimSpace(c.Cookies(cookieName)); tok != "" {
		return tok, nil
	}
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(authz, "Bearer ") {
		if tok := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer ")); tok != "" {
			return tok, nil
		}
	}
	return "", errMissingToken
}

// parseToken verifies signature with the process-wide secret. Claims
// validation happens separately so expiry can carry leeway.
func parseToken(tokenString string) (jwt.MapClaims, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errExpiredToken
	}
	var exp int64
	switch v := expRaw.(type) {
	case float64:
		exp = int64(v)
	case int64:
		exp = v
	default:
		return errExpiredToken
	}
	if time.Now().After(time.Unix(exp, 0).Add(leeway)) {
		return errExpiredToken
	}
	return nil
}

func claimString(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return strings.TrimSpace(v)
}
