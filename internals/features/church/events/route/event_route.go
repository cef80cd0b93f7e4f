package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/events/controller"
)

// EventPublicRoutes needs no token.
func EventPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewEventController(db)
	app.Get("/api/events", ctrl.List)
	app.Get("/api/events/public", ctrl.List)
}

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	e := admin.Group("/events")
	e.Get("/", ctrl.List)
	e.Post("/", ctrl.Create)
	e.Put("/:id", ctrl.Update)
	e.Delete("/:id", ctrl.Delete)
}
