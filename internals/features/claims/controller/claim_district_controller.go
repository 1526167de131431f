// internals/features/claims/controller/claim_district_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
)

// DistrictClaimController serves the final tier: district review and the
// terminal grant/reject decisions.
type DistrictClaimController struct {
	DB *gorm.DB
}

func NewDistrictClaimController(db *gorm.DB) *DistrictClaimController {
	return &DistrictClaimController{DB: db}
}

// GET /api/district/claims
func (ctrl *DistrictClaimController) ListClaims(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return listClaims(c, ctrl.DB, actor)
}

// GET /api/district/claims/:id
func (ctrl *DistrictClaimController) GetClaimByID(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return renderClaimDetail(c, ctrl.DB, actor)
}

// POST /api/district/claims/:id/review
func (ctrl *DistrictClaimController) MarkUnderReview(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionDistrictReview, "Claim taken up for district review")
}

// POST /api/district/claims/:id/approve
func (ctrl *DistrictClaimController) FinalApprove(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionDistrictApprove, "Title granted")
}

// POST /api/district/claims/:id/reject
func (ctrl *DistrictClaimController) FinalReject(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionDistrictReject, "Claim finally rejected")
}
