package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/schedules/dto"
	"churchhub_backend/internals/features/church/schedules/model"
	"churchhub_backend/internals/features/church/schedules/service"
	helper "churchhub_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

// GET /api/schedules?mes=&ano=&tipo=
func (sc *ScheduleController) List(c *fiber.Ctx) error {
	f := service.ListFilter{
		Mes:  c.QueryInt("mes"),
		Ano:  c.QueryInt("ano"),
		Tipo: strings.ToLower(strings.TrimSpace(c.Query("tipo"))),
	}
	if f.Mes < 0 || f.Mes > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "mes must be between 1 and 12")
	}
	if f.Tipo != "" && !service.IsValidTipo(f.Tipo) {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidTipo.Error())
	}

	list, err := service.ListSchedules(c.UserContext(), sc.DB, f)
	if err != nil {
		return scheduleError(c, err, "List schedules")
	}
	return helper.JsonOK(c, "ok", list)
}

// GET /api/schedules/positions?tipo=
func (sc *ScheduleController) Positions(c *fiber.Ctx) error {
	tipo := strings.ToLower(strings.TrimSpace(c.Query("tipo")))
	if tipo == "" {
		return helper.JsonOK(c, "ok", fiber.Map{
			model.TipoLouvor:   service.Positions(model.TipoLouvor),
			model.TipoObreiros: service.Positions(model.TipoObreiros),
		})
	}
	if !service.IsValidTipo(tipo) {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrInvalidTipo.Error())
	}
	return helper.JsonOK(c, "ok", service.Positions(tipo))
}

// GET /api/schedules/:id
func (sc *ScheduleController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := service.GetSchedule(c.UserContext(), sc.DB, id)
	if err != nil {
		return scheduleError(c, err, "Get schedule")
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/schedules (leader)
func (sc *ScheduleController) Create(c *fiber.Ctx) error {
	var body dto.CreateScheduleRequest
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
	if err := sc.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return scheduleError(c, err, "Create schedule")
	}
	return helper.JsonCreated(c, "Schedule created", dto.ToScheduleDTO(*m, nil))
}

// PUT /api/schedules/:id (leader)
func (sc *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m, err := service.FindSchedule(c.UserContext(), sc.DB, id)
	if err != nil {
		return scheduleError(c, err, "Update schedule")
	}
	if err := body.ApplyTo(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := sc.DB.WithContext(c.UserContext()).Omit("Assignments").Save(m).Error; err != nil {
		return scheduleError(c, err, "Update schedule")
	}
	out, err := service.GetSchedule(c.UserContext(), sc.DB, id)
	if err != nil {
		return scheduleError(c, err, "Update schedule")
	}
	return helper.JsonUpdated(c, "Schedule updated", out)
}

// DELETE /api/schedules/:id (leader), assignments cascade
func (sc *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := sc.DB.WithContext(c.UserContext()).Delete(&model.ScheduleModel{}, "id = ?", id)
	if res.Error != nil {
		return scheduleError(c, res.Error, "Delete schedule")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"id": id})
}

// POST /api/assignments (leader)
func (sc *ScheduleController) CreateAssignment(c *fiber.Ctx) error {
	var body dto.CreateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	out, err := service.Assign(c.UserContext(), sc.DB, body.ScheduleID, body.UserID, body.Posicao)
	if err != nil {
		return scheduleError(c, err, "CreateAssignment")
	}
	return helper.JsonCreated(c, "Assignment created", out)
}

// PATCH /api/assignments/:id (leader)
func (sc *ScheduleController) UpdateAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateAssignmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	out, err := service.UpdateAssignment(c.UserContext(), sc.DB, id, body.UserID, body.Posicao)
	if err != nil {
		return scheduleError(c, err, "UpdateAssignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", out)
}

// DELETE /api/assignments/:id (leader)
func (sc *ScheduleController) DeleteAssignment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.DeleteAssignment(c.UserContext(), sc.DB, id); err != nil {
		return scheduleError(c, err, "DeleteAssignment")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"id": id})
}

func scheduleError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	case errors.Is(err, service.ErrAssignmentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	case errors.Is(err, service.ErrInvalidTipo), errors.Is(err, service.ErrInvalidPosition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMinistryRequired):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "This member already holds that position on this schedule")
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
