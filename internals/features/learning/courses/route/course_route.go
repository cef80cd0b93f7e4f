package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/courses/controller"
)

// CourseUserRoutes: courses is /api/courses, my is /api/my (both behind auth).
func CourseUserRoutes(courses fiber.Router, my fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.Get)
	my.Get("/courses", ctrl.MyCourses)
}

// CourseAdminRoutes: admin is /api/admin.
func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseController(db)

	courses := admin.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)

	courses.Get("/:id/enrollments", ctrl.ListEnrollments)
	courses.Post("/:id/enrollments", ctrl.Enroll)
	courses.Delete("/:id/enrollments/:userId", ctrl.Unenroll)
}
