package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "churchhub_backend/internals/helpers"
)

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every regular endpoint
func GlobalRateLimiter() fiber.Handler {
	return ipLimiter(120, time.Minute, "❌ Too many requests. Please try again later.")
}

// Stricter limiter for login routes
func LoginRateLimiter() fiber.Handler {
	return ipLimiter(5, time.Minute, "❌ Too many login attempts. Try again in a moment.")
}

func RegisterRateLimiter() fiber.Handler {
	return ipLimiter(3, 5*time.Minute, "❌ Too many sign-up attempts. Please wait a few minutes.")
}

// Anonymous prayer requests
func PrayerRateLimiter() fiber.Handler {
	return ipLimiter(5, 10*time.Minute, "❌ Too many prayer requests sent. Please try again later.")
}
