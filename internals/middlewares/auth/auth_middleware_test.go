package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/configs"
	"churchhub_backend/internals/constants"
	authModel "churchhub_backend/internals/features/users/auth/model"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
)

const testSecret = "middleware-secret"

func sign(t *testing.T, id string, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  id,
		"exp": exp.Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = testSecret

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &authModel.TokenBlacklist{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	auth := AuthMiddleware(db)
	app.Get("/me", auth, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userRole").(string))
	})
	app.Get("/leaders", auth, OnlyRoles(constants.RoleErrorLeader("schedules"), constants.LeaderAndAbove...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email string, lider, active bool) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{Nome: "U", Email: email, Senha: "x", IsLider: lider, IsActive: true}
	require.NoError(t, db.Create(&u).Error)
	if !active {
		require.NoError(t, db.Model(&u).Update("is_active", false).Error)
	}
	return u
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	app, db := setupApp(t)
	member := createUser(t, db, "membro@igreja.test", false, true)
	lider := createUser(t, db, "lider@igreja.test", true, true)
	inactive := createUser(t, db, "inativo@igreja.test", false, false)
	hour := time.Now().Add(time.Hour)

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/me", sign(t, member.ID.String(), hour)))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", sign(t, member.ID.String(), time.Now().Add(-time.Hour))))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", sign(t, uuid.NewString(), hour)))
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/me", sign(t, inactive.ID.String(), hour)))
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", "garbage"))

	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/leaders", sign(t, member.ID.String(), hour)))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/leaders", sign(t, lider.ID.String(), hour)))
}

func TestAuthMiddleware_RoleFollowsDatabase(t *testing.T) {
	app, db := setupApp(t)
	u := createUser(t, db, "promovido@igreja.test", false, true)
	tok := sign(t, u.ID.String(), time.Now().Add(time.Hour))

	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/leaders", tok))
	require.NoError(t, db.Model(&u).Update("is_lider", true).Error)
	assert.Equal(t, fiber.StatusOK, get(t, app, "/leaders", tok))
}

func TestAuthMiddleware_Blacklisted(t *testing.T) {
	app, db := setupApp(t)
	u := createUser(t, db, "saiu@igreja.test", false, true)
	tok := sign(t, u.ID.String(), time.Now().Add(time.Hour))

	require.NoError(t, db.Create(&authModel.TokenBlacklist{Token: tok, ExpiredAt: time.Now().Add(time.Hour)}).Error)
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/me", tok))
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	app, db := setupApp(t)
	u := createUser(t, db, "cookie@igreja.test", false, true)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Cookie", "access_token="+sign(t, u.ID.String(), time.Now().Add(time.Hour)))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestValidateTokenExpiry(t *testing.T) {
	future := float64(time.Now().Add(time.Minute).Unix())
	past := float64(time.Now().Add(-time.Minute).Unix())

	assert.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": future}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": past}, 0))
	assert.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": past}, 2*time.Minute))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": "soon"}, 0))
}

func TestExtractUserID(t *testing.T) {
	id := uuid.New()
	got, err := extractUserID(jwt.MapClaims{"id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractUserID(jwt.MapClaims{"id": 42})
	assert.Error(t, err)
	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)
}
