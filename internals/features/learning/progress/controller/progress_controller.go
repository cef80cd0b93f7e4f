package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/progress/service"
	helper "churchhub_backend/internals/helpers"
)

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// GET /api/courses/:id/progress
func (pc *ProgressController) MyCourseProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out, err := service.GetCourseProgress(c.UserContext(), pc.DB, userID, courseID)
	if err != nil {
		return progressError(c, err, "MyCourseProgress")
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/admin/courses/:id/progress?scope=all|enrolled
func (pc *ProgressController) AllUsersProgress(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scope, err := service.ParseUserScope(c.Query("scope"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	out, err := service.GetAllUsersProgress(c.UserContext(), pc.DB, courseID, scope)
	if err != nil {
		return progressError(c, err, "AllUsersProgress")
	}
	return helper.JsonOK(c, "ok", out)
}

func progressError(c *fiber.Ctx, err error, op string) error {
	if errors.Is(err, service.ErrCourseNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
