package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/progress/controller"
)

// ProgressUserRoutes: courses is /api/courses behind auth.
func ProgressUserRoutes(courses fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)
	courses.Get("/:id/progress", ctrl.MyCourseProgress)
}

func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)
	admin.Get("/courses/:id/progress", ctrl.AllUsersProgress)
}
