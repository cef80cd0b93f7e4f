package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/visitors/dto"
	"churchhub_backend/internals/features/church/visitors/model"
	helper "churchhub_backend/internals/helpers"
)

type VisitorController struct {
	DB *gorm.DB
}

func NewVisitorController(db *gorm.DB) *VisitorController {
	return &VisitorController{DB: db}
}

// GET /api/member/visitors?q=&membrouSe=&page=&per_page=
func (vc *VisitorController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)
	q := vc.DB.WithContext(c.UserContext()).Model(&model.VisitorModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if v := strings.TrimSpace(c.Query("membrouSe")); v != "" {
		q = q.Where("membrou_se = ?", c.QueryBool("membrouSe"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] List visitors count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load visitors")
	}
	var list []model.VisitorModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&list).Error; err != nil {
		log.Println("[ERROR] List visitors:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load visitors")
	}
	pg := helper.BuildPagination(total, p, len(list))
	return helper.JsonList(c, "ok", dto.ToVisitorDTOs(list), &pg)
}

// POST /api/member/visitors
func (vc *VisitorController) Create(c *fiber.Ctx) error {
	var body dto.CreateVisitorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	m := body.ToModel()
	if err := vc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create visitor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register visitor")
	}
	return helper.JsonCreated(c, "Visitor registered", dto.ToVisitorDTO(*m))
}

// PATCH /api/member/visitors/:id
func (vc *VisitorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateVisitorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	var m model.VisitorModel
	if err := vc.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
		}
		log.Println("[ERROR] Update visitor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load visitor")
	}
	body.ApplyTo(&m)
	if err := vc.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Println("[ERROR] Update visitor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update visitor")
	}
	return helper.JsonUpdated(c, "Visitor updated", dto.ToVisitorDTO(m))
}

// DELETE /api/member/visitors/:id
func (vc *VisitorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := vc.DB.WithContext(c.UserContext()).Delete(&model.VisitorModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Delete visitor:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete visitor")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Visitor not found")
	}
	return helper.JsonDeleted(c, "Visitor deleted", fiber.Map{"id": id})
}
