package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/schedules/controller"
)

// ScheduleRoutes: schedules is /api/schedules, assignments is /api/assignments,
// both behind auth. Reads are open to members, writes to leaders and admins.
func ScheduleRoutes(schedules, assignments fiber.Router, leaderOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)

	schedules.Get("/", ctrl.List)
	schedules.Get("/positions", ctrl.Positions)
	schedules.Get("/:id", ctrl.Get)
	schedules.Post("/", leaderOnly, ctrl.Create)
	schedules.Put("/:id", leaderOnly, ctrl.Update)
	schedules.Delete("/:id", leaderOnly, ctrl.Delete)

	assignments.Post("/", leaderOnly, ctrl.CreateAssignment)
	assignments.Patch("/:id", leaderOnly, ctrl.UpdateAssignment)
	assignments.Delete("/:id", leaderOnly, ctrl.DeleteAssignment)
}
