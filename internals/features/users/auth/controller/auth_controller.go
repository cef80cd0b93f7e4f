package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDto "churchhub_backend/internals/features/users/auth/dto"
	"churchhub_backend/internals/features/users/auth/service"
	userDto "churchhub_backend/internals/features/users/user/dto"
	helper "churchhub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var body authDto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	res, err := service.Register(c.UserContext(), ac.DB, body)
	if err != nil {
		return authError(c, err)
	}
	setTokenCookie(c, res.Token, res.ExpiresAt)
	return helper.JsonCreated(c, "Registration successful", toAuthResponse(res))
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body authDto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	res, err := service.Login(c.UserContext(), ac.DB, body.Email, body.Senha)
	if err != nil {
		return authError(c, err)
	}
	setTokenCookie(c, res.Token, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", toAuthResponse(res))
}

// POST /api/auth/login-google
func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var body authDto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	res, err := service.LoginGoogle(c.UserContext(), ac.DB, body.IDToken)
	if err != nil {
		return authError(c, err)
	}
	setTokenCookie(c, res.Token, res.ExpiresAt)
	return helper.JsonOK(c, "Login successful", toAuthResponse(res))
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := helper.GetRawAccessToken(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}
	if err := service.Logout(c.UserContext(), ac.DB, token); err != nil {
		log.Println("[ERROR] Logout:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to logout")
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout successful", nil)
}

// POST /api/auth/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body authDto.ChangePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	if err := service.ChangePassword(c.UserContext(), ac.DB, userID, body.SenhaAtual, body.NovaSenha); err != nil {
		switch {
		case errors.Is(err, service.ErrCurrentPasswordWrong):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] ChangePassword:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password updated", nil)
}

func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrAccountInactive):
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated. Contact an admin.")
	case errors.Is(err, service.ErrInvalidGoogleToken), errors.Is(err, service.ErrGoogleEmailRequired):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	case errors.Is(err, service.ErrGoogleDisabled):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google sign-in is not available")
	}
	log.Println("[ERROR] auth:", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Authentication failed")
}

func toAuthResponse(res *service.AuthResult) authDto.AuthResponse {
	return authDto.AuthResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      userDto.ToUserDTO(res.User),
	}
}

func setTokenCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: "Lax",
		Path:     "/",
	})
}
