package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "churchhub_backend/internals/features/church/events/route"
	materialRoute "churchhub_backend/internals/features/church/materials/route"
	prayerRoute "churchhub_backend/internals/features/church/prayers/route"
	scheduleRoute "churchhub_backend/internals/features/church/schedules/route"
	visitorRoute "churchhub_backend/internals/features/church/visitors/route"
)

// ChurchPublicRoutes need no token.
func ChurchPublicRoutes(app *fiber.App, db *gorm.DB) {
	eventRoute.EventPublicRoutes(app, db)
	prayerRoute.PrayerPublicRoutes(app, db)
}

func ChurchUserRoutes(member Groups, db *gorm.DB) {
	materialRoute.MaterialUserRoutes(member.Materials, db)
	visitorRoute.VisitorMemberRoutes(member.Member, db)
	scheduleRoute.ScheduleRoutes(member.Schedules, member.Assignments, member.LeaderOnly, db)
}

func ChurchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventRoute.EventAdminRoutes(admin, db)
	materialRoute.MaterialAdminRoutes(admin, db)
	prayerRoute.PrayerAdminRoutes(admin, db)
}
