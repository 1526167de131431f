// internals/features/officers/route/officer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	officerController "vanadhikar_backend/internals/features/officers/controller"
	middlewares "vanadhikar_backend/internals/middlewares"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

func OfficerAuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := officerController.NewOfficerAuthController(db)

	auth := api.Group("/auth/officer")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/register", authMiddleware.SuperAdminOnly("officer registration"), ctrl.Register)

	admin := api.Group("/admin/officers", authMiddleware.SuperAdminOnly("officer records"))
	admin.Get("/", ctrl.ListOfficers)
}
