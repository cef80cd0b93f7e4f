package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/lessons/controller"
)

// LessonUserRoutes: courses is /api/courses, lessons is /api/lessons.
func LessonUserRoutes(courses fiber.Router, lessons fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	courses.Get("/:id/lessons", ctrl.ListByCourse)
	lessons.Get("/:id", ctrl.Get)
}

func LessonAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLessonController(db)

	admin.Get("/courses/:id/lessons", ctrl.ListByCourseAdmin)
	admin.Post("/courses/:id/lessons", ctrl.Create)
	admin.Put("/lessons/:id", ctrl.Update)
	admin.Delete("/lessons/:id", ctrl.Delete)
}
