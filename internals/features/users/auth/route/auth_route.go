// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "churchhub_backend/internals/features/users/auth/controller"
	rateLimiter "churchhub_backend/internals/middlewares"
	authMiddleware "churchhub_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth. Login and register are public; the rest need a token.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	protected := authMiddleware.AuthMiddleware(db)
	baseAuth.Post("/logout", protected, authController.Logout)
	baseAuth.Post("/change-password", protected, authController.ChangePassword)
}
