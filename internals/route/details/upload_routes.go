package details

import (
	"github.com/gofiber/fiber/v2"

	uploadRoute "churchhub_backend/internals/features/uploads/route"
)

func UploadRoutes(app *fiber.App, upload fiber.Router) {
	uploadRoute.UploadRoutes(app, upload)
}
