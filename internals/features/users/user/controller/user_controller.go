package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "churchhub_backend/internals/features/users/auth/helper"
	"churchhub_backend/internals/features/users/user/dto"
	"churchhub_backend/internals/features/users/user/model"
	"churchhub_backend/internals/features/users/user/service"
	helper "churchhub_backend/internals/helpers"
	"churchhub_backend/internals/helpers/dbtime"
)

type UserSelfController struct {
	DB *gorm.DB
}

func NewUserSelfController(db *gorm.DB) *UserSelfController {
	return &UserSelfController{DB: db}
}

// GET /api/users/me
func (uc *UserSelfController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] GetMe:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(user))
}

// PUT /api/profile
func (uc *UserSelfController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	var user model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := body.ApplyTo(&user); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := uc.DB.WithContext(c.UserContext()).Save(&user).Error; err != nil {
		log.Println("[ERROR] UpdateMe:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserDTO(user))
}

// GET /api/members/birthdays?month=1..12 (defaults to the current month)
func (uc *UserSelfController) Birthdays(c *fiber.Ctx) error {
	month := time.Now().In(dbtime.ChurchLocation()).Month()
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "month must be between 1 and 12")
		}
		month = time.Month(n)
	}

	list, err := service.LoadBirthdays(c.UserContext(), uc.DB, month)
	if err != nil {
		log.Println("[ERROR] Birthdays:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load birthdays")
	}
	return helper.JsonOK(c, "ok", list)
}

// GET /api/members, slim active member list for leaders building schedules
func (uc *UserSelfController) ListForLeaders(c *fiber.Ctx) error {
	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).Where("is_active = ?", true)
	switch c.Query("ministerio") {
	case "louvor":
		q = q.Where("ministerio_louvor = ?", true)
	case "obreiros":
		q = q.Where("ministerio_obreiro = ?", true)
	}

	var users []model.UserModel
	if err := q.Order("nome ASC").Find(&users).Error; err != nil {
		log.Println("[ERROR] ListForLeaders:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, fiber.Map{
			"id":                u.ID,
			"nome":              u.Nome,
			"ministerioLouvor":  u.MinisterioLouvor,
			"ministerioObreiro": u.MinisterioObreiro,
		})
	}
	return helper.JsonOK(c, "ok", out)
}

// hashIfPresent is shared by create/update so plain passwords never hit the DB.
func hashIfPresent(plain *string) (*string, error) {
	if plain == nil || *plain == "" {
		return nil, nil
	}
	h, err := authHelper.HashPassword(*plain)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
