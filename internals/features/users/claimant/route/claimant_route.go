// internals/features/users/claimant/route/claimant_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimantController "vanadhikar_backend/internals/features/users/claimant/controller"
	middlewares "vanadhikar_backend/internals/middlewares"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

func ClaimantAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimantController.NewClaimantAuthController(db)

	auth := api.Group("/auth/claimant")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", authMiddleware.ClaimantAuthMiddleware(), ctrl.Me)
}
