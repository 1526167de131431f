// internals/features/claims/controller/claim_claimant_controller.go
package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/dto"
	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
	helper "vanadhikar_backend/internals/helpers"
)

type ClaimantClaimController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClaimantClaimController(db *gorm.DB) *ClaimantClaimController {
	return &ClaimantClaimController{DB: db, Validate: validator.New()}
}

// POST /api/claims
func (ctrl *ClaimantClaimController) CreateClaim(c *fiber.Ctx) error {
	claimantID, err := helper.GetClaimantIDFromToken(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	var body dto.CreateClaimRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	appJSON, err := sonic.Marshal(body.Application)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid application payload")
	}

	cl, err := service.CreateClaim(ctrl.DB, service.CreateClaimInput{
		ClaimantID:     claimantID,
		ClaimType:      body.ClaimType,
		ForestLandArea: body.ForestLandArea,
		Village:        body.Village,
		GramPanchayat:  body.GramPanchayat,
		Tehsil:         body.Tehsil,
		District:       body.District,
		Application:    datatypes.JSON(appJSON),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Claim filed successfully", dto.CreateClaimResponse{
		ClaimID:             cl.ClaimID.String(),
		FraPattaID:          cl.ClaimFraPattaID,
		Status:              string(cl.ClaimStatus),
		JurisdictionPending: cl.ClaimJurisdictionPending,
	})
}

// GET /api/claims/my
func (ctrl *ClaimantClaimController) GetMyClaims(c *fiber.Ctx) error {
	claimantID, err := helper.GetClaimantIDFromToken(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	var claims []model.Claim
	if err := ctrl.DB.
		Scopes(service.ClaimantActor{ID: claimantID}.VisibilityScope()).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return respondServiceError(c, err)
	}

	items := make([]dto.ClaimListItem, 0, len(claims))
	for i := range claims {
		items = append(items, dto.NewClaimListItem(&claims[i]))
	}
	return helper.Success(c, "Your claims", items)
}

// GET /api/claims/:id
func (ctrl *ClaimantClaimController) GetClaimByID(c *fiber.Ctx) error {
	claimantID, err := helper.GetClaimantIDFromToken(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return renderClaimDetail(c, ctrl.DB, service.ClaimantActor{ID: claimantID})
}
