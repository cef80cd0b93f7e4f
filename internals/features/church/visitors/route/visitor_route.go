package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/visitors/controller"
)

// VisitorMemberRoutes: member is /api/member behind auth.
func VisitorMemberRoutes(member fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVisitorController(db)

	v := member.Group("/visitors")
	v.Get("/", ctrl.List)
	v.Post("/", ctrl.Create)
	v.Patch("/:id", ctrl.Update)
	v.Delete("/:id", ctrl.Delete)
}
