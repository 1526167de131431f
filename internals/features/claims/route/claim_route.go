// internals/features/claims/route/claim_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	claimController "vanadhikar_backend/internals/features/claims/controller"
	authMiddleware "vanadhikar_backend/internals/middlewares/auth"
)

// ClaimantClaimRoutes: filing and reading one's own claims.
func ClaimantClaimRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimController.NewClaimantClaimController(db)

	claims := api.Group("/claims", authMiddleware.ClaimantAuthMiddleware())
	claims.Post("/", ctrl.CreateClaim)
	claims.Get("/my", ctrl.GetMyClaims)
	claims.Get("/:id", ctrl.GetClaimByID)
}

// GramSabhaClaimRoutes: village-tier mapping and forwarding.
func GramSabhaClaimRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimController.NewGramSabhaClaimController(db)

	gs := api.Group("/gs/claims", authMiddleware.GramSabhaOnly("claim mapping"))
	gs.Get("/", ctrl.ListClaims)
	gs.Get("/:id", ctrl.GetClaimByID)
	gs.Post("/:id/map", ctrl.SaveMap)
	gs.Post("/:id/forward", ctrl.ForwardToSubdivision)
}

// SubdivisionClaimRoutes: SDLC tier. The same handlers are mounted twice,
// once behind the subdivision cookie and once behind the legacy block-officer
// cookie the old dashboard still sends.
func SubdivisionClaimRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimController.NewSubdivisionClaimController(db)

	mount := func(g fiber.Router) {
		g.Get("/", ctrl.ListClaims)
		g.Get("/:id", ctrl.GetClaimByID)
		g.Post("/:id/review", ctrl.MarkUnderReview)
		g.Post("/:id/approve", ctrl.Approve)
		g.Post("/:id/forward", ctrl.ForwardToDistrict)
		g.Post("/:id/reject", ctrl.Reject)
	}

	mount(api.Group("/subdivision/claims", authMiddleware.SubdivisionOnly("claim review")))
	mount(api.Group("/block/claims", authMiddleware.BlockOfficerCompat("claim review")))
}

// DistrictClaimRoutes: final tier.
func DistrictClaimRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimController.NewDistrictClaimController(db)

	district := api.Group("/district/claims", authMiddleware.DistrictOnly("final approval"))
	district.Get("/", ctrl.ListClaims)
	district.Get("/:id", ctrl.GetClaimByID)
	district.Post("/:id/review", ctrl.MarkUnderReview)
	district.Post("/:id/approve", ctrl.FinalApprove)
	district.Post("/:id/reject", ctrl.FinalReject)
}

// AdminClaimRoutes: SuperAdmin full visibility.
func AdminClaimRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := claimController.NewAdminClaimController(db)

	admin := api.Group("/admin/claims", authMiddleware.SuperAdminOnly("claim records"))
	admin.Get("/", ctrl.ListClaims)
	admin.Get("/:id", ctrl.GetClaimByID)
}
