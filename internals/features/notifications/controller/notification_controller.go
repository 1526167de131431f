// internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/notifications/model"
	helper "vanadhikar_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/gs/notifications
// A Gram Sabha officer sees notifications addressed to them directly or to
// their jurisdiction code (covers claims filed before they were assigned).
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	officerID, err := helper.GetOfficerIDFromToken(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Not logged in")
	}
	gpCode := helper.GetLocalString(c, "officer_gp_code")

	paging := helper.ResolvePaging(c, 25, 100)

	q := ctrl.DB.Model(&model.Notification{}).
		Where("notification_officer_id = ? OR (notification_gp_code <> '' AND notification_gp_code = ?)", officerID, gpCode)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] notification count: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	var items []model.Notification
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&items).Error; err != nil {
		log.Printf("[ERROR] notification list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return helper.Success(c, "Notifications", fiber.Map{
		"notifications": items,
		"pagination":    helper.BuildPagination(paging, total, len(items)),
	})
}

// PATCH /api/gs/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	officerID, err := helper.GetOfficerIDFromToken(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		return helper.Error(c, fiber.StatusUnauthorized, "Not logged in")
	}
	gpCode := helper.GetLocalString(c, "officer_gp_code")

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	now := time.Now()
	res := ctrl.DB.Model(&model.Notification{}).
		Where("notification_id = ? AND (notification_officer_id = ? OR notification_gp_code = ?)", notifID, officerID, gpCode).
		Updates(map[string]interface{}{
			"notification_read":    true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		log.Printf("[ERROR] notification mark read: %v", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Something went wrong")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Notification not found")
	}

	return helper.Success(c, "Notification marked read", nil)
}
