package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/analytics/controller"
)

func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnalyticsController(db)
	admin.Get("/analytics/courses", ctrl.Courses)
}
