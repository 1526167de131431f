// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimRoute "vanadhikar_backend/internals/features/claims/route"
	notificationRoute "vanadhikar_backend/internals/features/notifications/route"
	officerRoute "vanadhikar_backend/internals/features/officers/route"
	statsRoute "vanadhikar_backend/internals/features/stats/route"
	claimantRoute "vanadhikar_backend/internals/features/users/claimant/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up auth routes...")
	claimantRoute.ClaimantAuthRoutes(api, db)
	officerRoute.OfficerAuthRoutes(api, db)

	// ===================== CLAIMS =====================
	log.Println("[INFO] Setting up claim routes...")
	claimRoute.ClaimantClaimRoutes(api, db)
	claimRoute.GramSabhaClaimRoutes(api, db)
	claimRoute.SubdivisionClaimRoutes(api, db)
	claimRoute.DistrictClaimRoutes(api, db)
	claimRoute.AdminClaimRoutes(api, db)

	// ===================== NOTIFICATIONS / STATS =====================
	log.Println("[INFO] Setting up notification routes...")
	notificationRoute.NotificationRoutes(api, db)

	log.Println("[INFO] Setting up stats routes...")
	statsRoute.StatsRoutes(api, db)
}
