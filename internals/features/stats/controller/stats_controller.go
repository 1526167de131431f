// internals/features/stats/controller/stats_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"

	claimModel "vanadhikar_backend/internals/features/claims/model"
	helper "vanadhikar_backend/internals/helpers"
)

// StatsController feeds the SuperAdmin dashboard counters.
type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

type statusCount struct {
	ClaimStatus string `json:"status" gorm:"column:claim_status"`
	Count       int64  `json:"count"`
}

// GET /api/admin/stats/claims
func (ctrl *StatsController) ClaimStats(c *fiber.Ctx) error {
	var perStatus []statusCount
	if err := ctrl.DB.Model(&claimModel.Claim{}).
		Select("claim_status, COUNT(*) AS count").
		Group("claim_status").
		Scan(&perStatus).Error; err != nil {
		log.Printf("[ERROR] claim stats per status: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	n := now.New(time.Now())
	monthStart := n.BeginningOfMonth()
	yearStart := n.BeginningOfYear()

	var filedThisMonth, filedThisYear, unassigned, active int64
	if err := ctrl.DB.Model(&claimModel.Claim{}).Where("created_at >= ?", monthStart).Count(&filedThisMonth).Error; err != nil {
		log.Printf("[ERROR] claim stats month: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	if err := ctrl.DB.Model(&claimModel.Claim{}).Where("created_at >= ?", yearStart).Count(&filedThisYear).Error; err != nil {
		log.Printf("[ERROR] claim stats year: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	if err := ctrl.DB.Model(&claimModel.Claim{}).Where("claim_jurisdiction_pending = true").Count(&unassigned).Error; err != nil {
		log.Printf("[ERROR] claim stats unassigned: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	if err := ctrl.DB.Model(&claimModel.Claim{}).Where("claim_status IN ?", claimModel.ActiveStatusStrings()).Count(&active).Error; err != nil {
		log.Printf("[ERROR] claim stats active: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return helper.Success(c, "Claim statistics", fiber.Map{
		"per_status":       perStatus,
		"filed_this_month": filedThisMonth,
		"filed_this_year":  filedThisYear,
		"unassigned":       unassigned,
		"active":           active,
	})
}
