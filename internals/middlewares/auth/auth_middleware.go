// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	helper "churchhub_backend/internals/helpers"
	authModel "churchhub_backend/internals/features/users/auth/model"
)

const expirySkew = 30 * time.Second

// AuthMiddleware resolves the bearer token (or access_token cookie) to an
// active user and stores user_id, userRole and user_name in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header or cookie
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Blacklist (once per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			err := db.WithContext(c.UserContext()).
				Where("token = ?", tokenString).
				First(&existing).Error
			switch {
			case err == nil:
				log.Println("[WARN] Token is blacklisted")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			case !errors.Is(err, gorm.ErrRecordNotFound):
				log.Println("[ERROR] DB error while checking blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse + verify signature
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 4) exp
		if err := validateTokenExpiry(claims, expirySkew); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 5) user_id + active user; role comes from the current DB flags
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		u, err := loadActiveUser(db.WithContext(c.UserContext()), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			if errors.Is(err, errUserInactive) {
				return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
			}
			log.Println("[ERROR] loadActiveUser:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		helper.SetRawAccessToken(c, tokenString)
		c.Locals("user_id", userID.String())
		c.Locals("userRole", u.role())
		c.Locals("user_name", u.Nome)
		return c.Next()
	}
}
