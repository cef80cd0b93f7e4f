package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/prayers/dto"
	"churchhub_backend/internals/features/church/prayers/model"
	helper "churchhub_backend/internals/helpers"
)

type PrayerController struct {
	DB *gorm.DB
}

func NewPrayerController(db *gorm.DB) *PrayerController {
	return &PrayerController{DB: db}
}

// POST /api/prayers (public)
func (pc *PrayerController) Create(c *fiber.Ctx) error {
	var body dto.CreatePrayerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m := body.ToModel()
	if err := pc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create prayer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit prayer request")
	}
	return helper.JsonCreated(c, "Prayer request received", dto.ToPrayerDTO(*m))
}

// GET /api/prayers (public), approved and marked public only
func (pc *PrayerController) ListPublic(c *fiber.Ctx) error {
	var list []model.PrayerRequestModel
	if err := pc.DB.WithContext(c.UserContext()).
		Where("is_public = ? AND status = ?", true, model.StatusApproved).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		log.Println("[ERROR] List public prayers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load prayer requests")
	}
	return helper.JsonOK(c, "ok", dto.ToPrayerDTOs(list))
}

// GET /api/admin/prayers?status=
func (pc *PrayerController) ListAdmin(c *fiber.Ctx) error {
	q := pc.DB.WithContext(c.UserContext()).Model(&model.PrayerRequestModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !model.IsValidStatus(s) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be pending, approved or archived")
		}
		q = q.Where("status = ?", s)
	}

	var list []model.PrayerRequestModel
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		log.Println("[ERROR] List prayers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load prayer requests")
	}
	return helper.JsonOK(c, "ok", dto.ToPrayerDTOs(list))
}

// PATCH /api/admin/prayers/:id {status?, isPublic?}
func (pc *PrayerController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdatePrayerStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	if body.Empty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var m model.PrayerRequestModel
	if err := pc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
		}
		log.Println("[ERROR] Update prayer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load prayer request")
	}

	updates := map[string]any{}
	if body.Status != nil {
		updates["status"] = *body.Status
		m.Status = *body.Status
	}
	if body.IsPublic != nil {
		updates["is_public"] = *body.IsPublic
		m.IsPublic = *body.IsPublic
	}
	if err := pc.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		log.Println("[ERROR] Update prayer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update prayer request")
	}
	return helper.JsonUpdated(c, "Prayer request updated", dto.ToPrayerDTO(m))
}

// DELETE /api/admin/prayers/:id
func (pc *PrayerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := pc.DB.WithContext(c.UserContext()).Delete(&model.PrayerRequestModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Delete prayer:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete prayer request")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Prayer request not found")
	}
	return helper.JsonDeleted(c, "Prayer request deleted", fiber.Map{"id": id})
}
