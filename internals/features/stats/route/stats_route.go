// internals/features/stats/route/stats_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statsController "vanadhikar_backend/internals/features/stats/controller"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

func StatsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)

	admin := api.Group("/admin/stats", authMiddleware.SuperAdminOnly("claim statistics"))
	admin.Get("/claims", ctrl.ClaimStats)
}
