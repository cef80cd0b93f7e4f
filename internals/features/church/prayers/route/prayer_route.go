package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/prayers/controller"
	rateLimiter "churchhub_backend/internals/middlewares"
)

// PrayerPublicRoutes needs no token; submissions are rate limited per IP.
func PrayerPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewPrayerController(db)

	app.Post("/api/prayers", rateLimiter.PrayerRateLimiter(), ctrl.Create)
	app.Get("/api/prayers", ctrl.ListPublic)
	app.Get("/api/prayers/public", ctrl.ListPublic)
}

func PrayerAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPrayerController(db)

	p := admin.Group("/prayers")
	p.Get("/", ctrl.ListAdmin)
	p.Patch("/:id", ctrl.UpdateStatus)
	p.Delete("/:id", ctrl.Delete)
}
