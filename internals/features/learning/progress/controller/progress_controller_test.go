package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	"churchhub_backend/internals/features/learning/progress/dto"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

type fixture struct {
	app      *fiber.App
	courseID uuid.UUID
	ana      uuid.UUID
	bia      uuid.UUID
}

// Ana finishes both lessons and is enrolled, Bia finishes one and is not.
func setup(t *testing.T) fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&courseModel.CourseEnrollmentModel{},
		&lessonModel.LessonModel{},
		&quizModel.LessonCompletionModel{},
	))

	ana := userModel.UserModel{Nome: "Ana", Email: "ana@igreja.test", Senha: "x", IsActive: true}
	bia := userModel.UserModel{Nome: "Bia", Email: "bia@igreja.test", Senha: "x", IsActive: true}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, db.Create(&bia).Error)

	course := courseModel.CourseModel{Nome: "Discipulado", Descricao: "d", Slug: "discipulado"}
	require.NoError(t, db.Create(&course).Error)
	var lessons []lessonModel.LessonModel
	for i := 1; i <= 2; i++ {
		l := lessonModel.LessonModel{CursoID: course.ID, Titulo: "Aula", Descricao: "d", VideoURL: "https://v.test", Ordem: i}
		require.NoError(t, db.Create(&l).Error)
		lessons = append(lessons, l)
	}
	done := func(u userModel.UserModel, l lessonModel.LessonModel) {
		row := quizModel.LessonCompletionModel{UserID: u.ID, LessonID: l.ID, Score: 3, Completed: true, Tentativas: 1}
		require.NoError(t, db.Create(&row).Error)
	}
	done(ana, lessons[0])
	done(ana, lessons[1])
	done(bia, lessons[0])
	require.NoError(t, db.Create(&courseModel.CourseEnrollmentModel{UserID: ana.ID, CourseID: course.ID}).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", bia.ID.String())
		return c.Next()
	})
	ctrl := NewProgressController(db)
	app.Get("/api/courses/:id/progress", ctrl.MyCourseProgress)
	app.Get("/api/admin/courses/:id/progress", ctrl.AllUsersProgress)

	return fixture{app: app, courseID: course.ID, ana: ana.ID, bia: bia.ID}
}

func (f fixture) get(t *testing.T, path string) (int, envelope) {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	return resp.StatusCode, env
}

func TestMyCourseProgress(t *testing.T) {
	f := setup(t)

	status, env := f.get(t, "/api/courses/"+f.courseID.String()+"/progress")
	require.Equal(t, fiber.StatusOK, status)
	var got dto.CourseProgressDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, dto.CourseProgressDTO{TotalLessons: 2, CompletedLessons: 1, Progress: 50}, got)

	status, _ = f.get(t, "/api/courses/"+uuid.NewString()+"/progress")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = f.get(t, "/api/courses/abc/progress")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestAllUsersProgress(t *testing.T) {
	f := setup(t)
	base := "/api/admin/courses/" + f.courseID.String() + "/progress"

	status, env := f.get(t, base)
	require.Equal(t, fiber.StatusOK, status)
	var all []dto.UserProgressDTO
	require.NoError(t, json.Unmarshal(env.Data, &all))
	assert.Equal(t, []dto.UserProgressDTO{
		{UserID: f.ana, UserName: "Ana", Progress: 100, CompletedLessons: 2},
		{UserID: f.bia, UserName: "Bia", Progress: 50, CompletedLessons: 1},
	}, all)

	status, env = f.get(t, base+"?scope=enrolled")
	require.Equal(t, fiber.StatusOK, status)
	var enrolled []dto.UserProgressDTO
	require.NoError(t, json.Unmarshal(env.Data, &enrolled))
	require.Len(t, enrolled, 1)
	assert.Equal(t, f.ana, enrolled[0].UserID)
}

func TestAllUsersProgress_BadRequest(t *testing.T) {
	f := setup(t)

	status, env := f.get(t, "/api/admin/courses/"+f.courseID.String()+"/progress?scope=everyone")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "BAD_REQUEST", env.ErrorCode)

	status, _ = f.get(t, "/api/admin/courses/"+uuid.NewString()+"/progress")
	assert.Equal(t, fiber.StatusNotFound, status)
}
