package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "churchhub_backend/internals/features/users/user/route"
)

// UserRoutes: /api/users/me, /api/profile, /api/members and the admin member console.
func UserRoutes(member Groups, admin fiber.Router, db *gorm.DB) {
	userRoute.UserSelfRoutes(member.Users, member.Profile, member.Members, member.LeaderOnly, db)
	userRoute.UserAdminRoutes(admin, db)
}
