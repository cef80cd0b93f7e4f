package details

import "github.com/gofiber/fiber/v2"

// Groups holds the authenticated member routers. Each is created once with the
// auth middleware so public paths never inherit it.
type Groups struct {
	Users       fiber.Router // /api/users
	Profile     fiber.Router // /api/profile
	Members     fiber.Router // /api/members
	Courses     fiber.Router // /api/courses
	Lessons     fiber.Router // /api/lessons
	My          fiber.Router // /api/my
	Materials   fiber.Router // /api/materials
	Member      fiber.Router // /api/member
	Schedules   fiber.Router // /api/schedules
	Assignments fiber.Router // /api/assignments

	LeaderOnly fiber.Handler
}
