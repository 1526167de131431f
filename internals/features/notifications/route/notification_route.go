// internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "vanadhikar_backend/internals/features/notifications/controller"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	gs := api.Group("/gs/notifications", authMiddleware.GramSabhaOnly("notifications"))
	gs.Get("/", ctrl.ListMine)
	gs.Patch("/:id/read", ctrl.MarkRead)
}
