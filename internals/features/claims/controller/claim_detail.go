package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/dto"
	"vanadhikar_backend/internals/features/claims/model"
	"vanadhikar_backend/internals/features/claims/service"
	helper "vanadhikar_backend/internals/helpers"
)

// renderClaimDetail is the one detail-read path for every role. Access is
// the actor's Matches predicate; a mismatch is a 403 out-of-jurisdiction,
// not a 404, since authorized roles are allowed to learn the claim exists.
func renderClaimDetail(c *fiber.Ctx, db *gorm.DB, actor service.Actor) error {
	claimID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid claim id")
	}

	var cl model.Claim
	if err := db.Where("claim_id = ?", claimID).First(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, service.ErrClaimNotFound.Error())
		}
		return respondServiceError(c, err)
	}

	if !actor.Matches(&cl) {
		return helper.Error(c, fiber.StatusForbidden, service.ErrAccessDenied.Error())
	}

	var history []model.ClaimTransition
	if err := db.Where("transition_claim_id = ?", cl.ClaimID).
		Order("created_at ASC").
		Find(&history).Error; err != nil {
		return respondServiceError(c, err)
	}

	return helper.Success(c, "Claim detail", dto.ClaimDetail{
		Claim:   &cl,
		History: history,
	})
}

// listClaims applies the actor's visibility scope plus pagination; used by
// every officer listing endpoint.
func listClaims(c *fiber.Ctx, db *gorm.DB, actor service.Actor) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := db.Model(&model.Claim{}).Scopes(actor.VisibilityScope())

	if status := c.Query("status"); status != "" {
		if normalized, ok := model.NormalizeStatus(status); ok {
			q = q.Where("claim_status IN ?", model.StatusSpellings(normalized))
		} else {
			q = q.Where("claim_status = ?", status)
		}
	}
	if c.Query("unassigned") == "true" {
		q = q.Where("claim_jurisdiction_pending = true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return respondServiceError(c, err)
	}

	var claims []model.Claim
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&claims).Error; err != nil {
		return respondServiceError(c, err)
	}

	items := make([]dto.ClaimListItem, 0, len(claims))
	for i := range claims {
		items = append(items, dto.NewClaimListItem(&claims[i]))
	}

	return helper.Success(c, "Claims", fiber.Map{
		"claims":     items,
		"pagination": helper.BuildPagination(paging, total, len(items)),
	})
}
