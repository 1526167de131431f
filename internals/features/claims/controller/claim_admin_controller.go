// internals/features/claims/controller/claim_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/service"
)

// AdminClaimController gives SuperAdmin full visibility, including the
// ?unassigned=true filter over claims whose GP-name lookup missed.
type AdminClaimController struct {
	DB *gorm.DB
}

func NewAdminClaimController(db *gorm.DB) *AdminClaimController {
	return &AdminClaimController{DB: db}
}

// GET /api/admin/claims
func (ctrl *AdminClaimController) ListClaims(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return listClaims(c, ctrl.DB, actor)
}

// GET /api/admin/claims/:id
func (ctrl *AdminClaimController) GetClaimByID(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return renderClaimDetail(c, ctrl.DB, actor)
}
