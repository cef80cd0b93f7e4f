package route

import (
	"github.com/gofiber/fiber/v2"

	"churchhub_backend/internals/configs"
	"churchhub_backend/internals/features/uploads/controller"
)

// UploadRoutes: upload is the admin-guarded /api/upload router.
// Stored files are served from /uploads without auth.
func UploadRoutes(app *fiber.App, upload fiber.Router) {
	ctrl := controller.NewUploadController()
	upload.Post("/", ctrl.Upload)

	app.Static("/uploads", configs.UploadDir, fiber.Static{
		MaxAge: 86400,
	})
}
