package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"vanadhikar_backend/internals/features/claims/dto"
	"vanadhikar_backend/internals/features/claims/service"
	helper "vanadhikar_backend/internals/helpers"
)

// respondServiceError maps domain errors to HTTP locally, per handler;
// nothing propagates to a global error handler.
func respondServiceError(c *fiber.Ctx, err error) error {
	var activeErr *service.ActiveClaimError
	if errors.As(err, &activeErr) {
		return helper.ErrorWithDetails(c, fiber.StatusConflict,
			"You already have a claim in progress",
			dto.NewConflictClaim(activeErr.Existing))
	}

	var stateErr *service.InvalidStateError
	if errors.As(err, &stateErr) {
		return helper.Error(c, fiber.StatusBadRequest, stateErr.Error())
	}

	if errors.Is(err, service.ErrAccessDenied) {
		return helper.Error(c, fiber.StatusForbidden, service.ErrAccessDenied.Error())
	}
	if errors.Is(err, service.ErrClaimNotFound) {
		return helper.Error(c, fiber.StatusNotFound, service.ErrClaimNotFound.Error())
	}
	if errors.Is(err, service.ErrStaleWrite) {
		return helper.Error(c, fiber.StatusConflict, service.ErrStaleWrite.Error())
	}

	if isUniqueViolation(err) {
		return helper.Error(c, fiber.StatusConflict, "Duplicate value for a unique field")
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.Error(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] claim handler: %v", err)
	return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
