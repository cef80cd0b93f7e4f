package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/analytics/service"
	helper "churchhub_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// GET /api/admin/analytics/courses
func (ac *AnalyticsController) Courses(c *fiber.Ctx) error {
	out, err := service.LoadCourseAnalytics(c.UserContext(), ac.DB)
	if err != nil {
		log.Println("[ERROR] course analytics:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "ok", out)
}
