package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/user/controller"
)

// UserSelfRoutes: every router passed in already carries auth.
// members additionally needs leaders for the slim listing.
func UserSelfRoutes(users, profile, members fiber.Router, leaderOnly fiber.Handler, db *gorm.DB) {
	ctrl := controller.NewUserSelfController(db)

	users.Get("/me", ctrl.GetMe)
	profile.Put("/", ctrl.UpdateMe)
	members.Get("/birthdays", ctrl.Birthdays)
	members.Get("/", leaderOnly, ctrl.ListForLeaders)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	m := admin.Group("/members")
	m.Get("/", ctrl.List)
	m.Post("/", ctrl.Create)
	m.Get("/:id", ctrl.Get)
	m.Put("/:id", ctrl.Update)
	m.Delete("/:id", ctrl.Delete)
	m.Patch("/:id/toggle-admin", ctrl.ToggleAdmin)
	m.Patch("/:id/toggle-lider", ctrl.ToggleLider)

	admin.Get("/analytics/members", ctrl.Analytics)
}
