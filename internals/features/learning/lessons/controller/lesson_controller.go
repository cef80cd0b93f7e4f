package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/lessons/dto"
	"churchhub_backend/internals/features/learning/lessons/service"
	helper "churchhub_backend/internals/helpers"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

// GET /api/courses/:id/lessons, each lesson carries the caller's completed flag
func (lc *LessonController) ListByCourse(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	list, err := service.ListByCourse(c.UserContext(), lc.DB, courseID)
	if err != nil {
		return lessonError(c, err, "ListByCourse")
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.ID)
	}
	done, err := service.CompletedSet(c.UserContext(), lc.DB, userID, ids)
	if err != nil {
		return lessonError(c, err, "ListByCourse")
	}
	return helper.JsonOK(c, "ok", dto.ToLessonDTOs(list, done))
}

// GET /api/admin/courses/:id/lessons
func (lc *LessonController) ListByCourseAdmin(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	list, err := service.ListByCourse(c.UserContext(), lc.DB, courseID)
	if err != nil {
		return lessonError(c, err, "ListByCourseAdmin")
	}
	return helper.JsonOK(c, "ok", dto.ToLessonDTOs(list, nil))
}

// GET /api/lessons/:id
func (lc *LessonController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.Find(c.UserContext(), lc.DB, id)
	if err != nil {
		return lessonError(c, err, "Get lesson")
	}
	return helper.JsonOK(c, "ok", dto.ToLessonDTO(*m))
}

// POST /api/admin/courses/:id/lessons
func (lc *LessonController) Create(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.CreateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m := body.ToModel(courseID)
	if err := service.Create(c.UserContext(), lc.DB, m); err != nil {
		return lessonError(c, err, "Create lesson")
	}
	return helper.JsonCreated(c, "Lesson created", dto.ToLessonDTO(*m))
}

// PUT /api/admin/lessons/:id
func (lc *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.UpdateLessonRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m, err := service.Find(c.UserContext(), lc.DB, id)
	if err != nil {
		return lessonError(c, err, "Update lesson")
	}
	body.ApplyTo(m)
	if err := service.Save(c.UserContext(), lc.DB, m); err != nil {
		return lessonError(c, err, "Update lesson")
	}
	return helper.JsonUpdated(c, "Lesson updated", dto.ToLessonDTO(*m))
}

// DELETE /api/admin/lessons/:id
func (lc *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Delete(c.UserContext(), lc.DB, id); err != nil {
		return lessonError(c, err, "Delete lesson")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"id": id})
}

func lessonError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrLessonNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	case errors.Is(err, service.ErrCourseNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
