package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/dto"
	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
	helper "vanadhikar_backend/internals/helpers"
)

// applyRemarksTransition handles every transition whose body is just
// optional remarks: actor from locals, id from the path, one CAS apply.
func applyRemarksTransition(c *fiber.Ctx, db *gorm.DB, action model.ClaimAction, successMsg string) error {
	actor, err := service.ActorFromOfficerLocals(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid claim id")
	}

	var body dto.RemarksRequest
	// Body is optional for these routes.
	_ = c.BodyParser(&body)

	cl, err := service.ApplyTransition(db, service.TransitionInput{
		ClaimID: claimID,
		Action:  action,
		Actor:   actor,
		Remarks: body.Remarks,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return helper.Success(c, successMsg, dto.NewClaimListItem(cl))
}
