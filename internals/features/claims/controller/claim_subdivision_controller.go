// internals/features/claims/controller/claim_subdivision_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
)

// SubdivisionClaimController serves the SDLC tier (and the legacy
// block-officer dashboard, which hits the same routes with its own cookie).
type SubdivisionClaimController struct {
	DB *gorm.DB
}

func NewSubdivisionClaimController(db *gorm.DB) *SubdivisionClaimController {
	return &SubdivisionClaimController{DB: db}
}

// GET /api/subdivision/claims
func (ctrl *SubdivisionClaimController) ListClaims(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return listClaims(c, ctrl.DB, actor)
}

// GET /api/subdivision/claims/:id
func (ctrl *SubdivisionClaimController) GetClaimByID(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return renderClaimDetail(c, ctrl.DB, actor)
}

// POST /api/subdivision/claims/:id/review
func (ctrl *SubdivisionClaimController) MarkUnderReview(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionSubdivisionReview, "Claim taken up for review")
}

// POST /api/subdivision/claims/:id/approve
func (ctrl *SubdivisionClaimController) Approve(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionSubdivisionApprove, "Claim approved at subdivision level")
}

// POST /api/subdivision/claims/:id/forward
func (ctrl *SubdivisionClaimController) ForwardToDistrict(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionForwardDistrict, "Claim forwarded to district committee")
}

// POST /api/subdivision/claims/:id/reject
func (ctrl *SubdivisionClaimController) Reject(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionSubdivisionReject, "Claim rejected at subdivision level")
}
