// internals/features/claims/controller/claim_gs_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/dto"
	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
	helper "vanadhikar_backend/internals/helpers"
)

// GramSabhaClaimController serves the village tier: listing its
// jurisdiction, drawing the parcel map, and forwarding mapped claims.
type GramSabhaClaimController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGramSabhaClaimController(db *gorm.DB) *GramSabhaClaimController {
	return &GramSabhaClaimController{DB: db, Validate: validator.New()}
}

// GET /api/gs/claims
func (ctrl *GramSabhaClaimController) ListClaims(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return listClaims(c, ctrl.DB, actor)
}

// GET /api/gs/claims/:id
func (ctrl *GramSabhaClaimController) GetClaimByID(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return renderClaimDetail(c, ctrl.DB, actor)
}

// POST /api/gs/claims/:id/map
func (ctrl *GramSabhaClaimController) SaveMap(c *fiber.Ctx) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid claim id")
	}

	var body dto.SaveMapRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	cl, err := service.ApplyTransition(ctrl.DB, service.TransitionInput{
		ClaimID:   claimID,
		Action:    model.ActionSaveMap,
		Actor:     actor,
		Remarks:   body.Remarks,
		MapData:   datatypes.JSON(body.MapData),
		TotalArea: &body.TotalArea,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return helper.Success(c, "Map saved, claim marked as mapped", dto.NewClaimListItem(cl))
}

// POST /api/gs/claims/:id/forward
func (ctrl *GramSabhaClaimController) ForwardToSubdivision(c *fiber.Ctx) error {
	return applyRemarksTransition(c, ctrl.DB, model.ActionForwardSubdivision, "Claim forwarded to subdivision")
}
