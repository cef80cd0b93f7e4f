package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/materials/dto"
	"churchhub_backend/internals/features/church/materials/model"
	helper "churchhub_backend/internals/helpers"
)

type MaterialController struct {
	DB *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{DB: db}
}

// GET /api/materials?tipo=pdf|video&tag=&q=
func (mc *MaterialController) List(c *fiber.Ctx) error {
	q := mc.DB.WithContext(c.UserContext()).Model(&model.MaterialModel{})

	switch tipo := strings.ToLower(strings.TrimSpace(c.Query("tipo"))); tipo {
	case "":
	case model.TipoPDF, model.TipoVideo:
		q = q.Where("tipo = ?", tipo)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "tipo must be pdf or video")
	}
	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		q = q.Where("? = ANY(tags)", tag)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(titulo) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var list []model.MaterialModel
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		log.Println("[ERROR] List materials:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load materials")
	}
	return helper.JsonOK(c, "ok", dto.ToMaterialDTOs(list))
}

// POST /api/admin/materials
func (mc *MaterialController) Create(c *fiber.Ctx) error {
	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m := body.ToModel()
	if err := mc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create material:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create material")
	}
	return helper.JsonCreated(c, "Material created", dto.ToMaterialDTO(*m))
}

// PUT /api/admin/materials/:id
func (mc *MaterialController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	var m model.MaterialModel
	if err := mc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		log.Println("[ERROR] Update material:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load material")
	}
	body.ApplyTo(&m)
	if err := mc.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Println("[ERROR] Update material:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update material")
	}
	return helper.JsonUpdated(c, "Material updated", dto.ToMaterialDTO(m))
}

// DELETE /api/admin/materials/:id
func (mc *MaterialController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := mc.DB.WithContext(c.UserContext()).Delete(&model.MaterialModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Delete material:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete material")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}
	return helper.JsonDeleted(c, "Material deleted", fiber.Map{"id": id})
}
