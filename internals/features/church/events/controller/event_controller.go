package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/events/dto"
	"churchhub_backend/internals/features/church/events/model"
	helper "churchhub_backend/internals/helpers"
	"churchhub_backend/internals/helpers/dbtime"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// GET /api/events?upcoming=true, ordered by date
func (ec *EventController) List(c *fiber.Ctx) error {
	q := ec.DB.WithContext(c.UserContext()).Model(&model.EventModel{})
	if c.QueryBool("upcoming") {
		today := time.Now().In(dbtime.ChurchLocation()).Format(dbtime.DateLayout)
		q = q.Where("data >= ?", today)
	}

	var list []model.EventModel
	if err := q.Order("data ASC").Find(&list).Error; err != nil {
		log.Println("[ERROR] List events:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	c.Set("Cache-Control", "public, max-age=60")
	return helper.JsonOK(c, "ok", dto.ToEventDTOs(list))
}

// POST /api/admin/events
func (ec *EventController) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	m, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ec.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		log.Println("[ERROR] Create event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(*m))
}

// PUT /api/admin/events/:id
func (ec *EventController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	var m model.EventModel
	if err := ec.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Println("[ERROR] Update event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	if err := body.ApplyTo(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ec.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		log.Println("[ERROR] Update event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToEventDTO(m))
}

// DELETE /api/admin/events/:id
func (ec *EventController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := ec.DB.WithContext(c.UserContext()).Delete(&model.EventModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Delete event:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"id": id})
}
