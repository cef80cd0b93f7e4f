package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/materials/controller"
)

// MaterialUserRoutes: materials is /api/materials behind auth.
func MaterialUserRoutes(materials fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialController(db)
	materials.Get("/", ctrl.List)
}

func MaterialAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMaterialController(db)

	m := admin.Group("/materials")
	m.Get("/", ctrl.List)
	m.Post("/", ctrl.Create)
	m.Put("/:id", ctrl.Update)
	m.Delete("/:id", ctrl.Delete)
}
