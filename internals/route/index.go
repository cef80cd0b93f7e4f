package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
	authMiddleware "churchhub_backend/internals/middlewares/auth"
	routeDetails "churchhub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up public church routes...")
	routeDetails.ChurchPublicRoutes(app, db)

	// ===================== GROUPS =====================
	auth := authMiddleware.AuthMiddleware(db)
	leaderOnly := authMiddleware.OnlyRoles(constants.RoleErrorLeader("this resource"), constants.LeaderAndAbove...)
	adminOnly := authMiddleware.OnlyRoles(constants.RoleErrorAdmin("the admin area"), constants.AdminOnly...)

	member := routeDetails.Groups{
		Users:       app.Group("/api/users", auth),
		Profile:     app.Group("/api/profile", auth),
		Members:     app.Group("/api/members", auth),
		Courses:     app.Group("/api/courses", auth),
		Lessons:     app.Group("/api/lessons", auth),
		My:          app.Group("/api/my", auth),
		Materials:   app.Group("/api/materials", auth),
		Member:      app.Group("/api/member", auth),
		Schedules:   app.Group("/api/schedules", auth),
		Assignments: app.Group("/api/assignments", auth),
		LeaderOnly:  leaderOnly,
	}

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/admin", auth, adminOnly)
	upload := app.Group("/api/upload", auth, adminOnly)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(member, admin, db)

	log.Println("[INFO] Mounting learning routes...")
	routeDetails.LearningUserRoutes(member, db)
	routeDetails.LearningAdminRoutes(admin, db)

	log.Println("[INFO] Mounting church routes...")
	routeDetails.ChurchUserRoutes(member, db)
	routeDetails.ChurchAdminRoutes(admin, db)

	log.Println("[INFO] Mounting upload routes...")
	routeDetails.UploadRoutes(app, upload)
}
