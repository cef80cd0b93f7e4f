package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/courses/dto"
	"churchhub_backend/internals/features/learning/courses/model"
	"churchhub_backend/internals/features/learning/courses/service"
	helper "churchhub_backend/internals/helpers"
)

type CourseController struct {
	DB *gorm.DB
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db}
}

// GET /api/courses?q=
func (cc *CourseController) List(c *fiber.Ctx) error {
	q := cc.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		q = q.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(s)+"%")
	}

	var list []model.CourseModel
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		log.Println("[ERROR] List courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}
	return cc.respondWithCounts(c, list)
}

// GET /api/courses/:id (uuid or slug)
func (cc *CourseController) Get(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("id"))
	q := cc.DB.WithContext(c.UserContext())

	var m model.CourseModel
	var err error
	if id, perr := helper.ParseUUIDParam(c, "id"); perr == nil {
		err = q.First(&m, "id = ?", id).Error
	} else {
		err = q.First(&m, "slug = ?", strings.ToLower(key)).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		log.Println("[ERROR] Get course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	counts, err := service.LessonCounts(c.UserContext(), cc.DB, []uuid.UUID{m.ID})
	if err != nil {
		log.Println("[ERROR] lesson counts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseDTOs([]model.CourseModel{m}, counts)[0])
}

// GET /api/my/courses
func (cc *CourseController) MyCourses(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	list, err := service.MyCourses(c.UserContext(), cc.DB, userID)
	if err != nil {
		log.Println("[ERROR] MyCourses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}
	return cc.respondWithCounts(c, list)
}

// POST /api/admin/courses
func (cc *CourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m := body.ToModel()
	err := cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := service.AssignSlug(c.UserContext(), tx, m); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A course with this name already exists")
		}
		log.Println("[ERROR] Create course:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.ToCourseDTO(*m))
}

// PUT /api/admin/courses/:id
func (cc *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	m, err := service.FindCourse(c.UserContext(), cc.DB, id)
	if err != nil {
		return courseError(c, err, "Update course")
	}

	err = cc.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if body.ApplyTo(m) {
			if err := service.AssignSlug(c.UserContext(), tx, m); err != nil {
				return err
			}
		}
		return tx.Save(m).Error
	})
	if err != nil {
		return courseError(c, err, "Update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.ToCourseDTO(*m))
}

// DELETE /api/admin/courses/:id, lessons, questions, completions and enrollments cascade
func (cc *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := cc.DB.WithContext(c.UserContext()).Delete(&model.CourseModel{}, "id = ?", id)
	if res.Error != nil {
		return courseError(c, res.Error, "Delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"id": id})
}

// GET /api/admin/courses/:id/enrollments
func (cc *CourseController) ListEnrollments(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if _, err := service.FindCourse(c.UserContext(), cc.DB, id); err != nil {
		return courseError(c, err, "ListEnrollments")
	}
	list, err := service.ListEnrollments(c.UserContext(), cc.DB, id)
	if err != nil {
		return courseError(c, err, "ListEnrollments")
	}
	return helper.JsonOK(c, "ok", list)
}

// POST /api/admin/courses/:id/enrollments {userIds:[...]}
func (cc *CourseController) Enroll(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var body dto.EnrollRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	added, err := service.Enroll(c.UserContext(), cc.DB, id, body.UserIDs)
	if err != nil {
		return courseError(c, err, "Enroll")
	}
	return helper.JsonCreated(c, "Enrollment saved", fiber.Map{"enrolled": added})
}

// DELETE /api/admin/courses/:id/enrollments/:userId
func (cc *CourseController) Unenroll(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ok, err := service.Unenroll(c.UserContext(), cc.DB, id, userID)
	if err != nil {
		return courseError(c, err, "Unenroll")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "Enrollment removed", nil)
}

func (cc *CourseController) respondWithCounts(c *fiber.Ctx, list []model.CourseModel) error {
	ids := make([]uuid.UUID, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	counts, err := service.LessonCounts(c.UserContext(), cc.DB, ids)
	if err != nil {
		log.Println("[ERROR] lesson counts:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load courses")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseDTOs(list, counts))
}

func courseError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	case errors.Is(err, service.ErrUnknownUser):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case helper.IsUniqueViolation(err):
		return helper.JsonError(c, fiber.StatusConflict, "A course with this name already exists")
	}
	log.Printf("[ERROR] %s: %v", op, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
