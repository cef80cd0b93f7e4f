package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

type world struct {
	db      *gorm.DB
	course  courseModel.CourseModel
	lessons []lessonModel.LessonModel
	users   map[string]userModel.UserModel
}

func newWorld(t *testing.T) world {
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

	w := world{db: db, users: map[string]userModel.UserModel{}}
	for _, name := range []string{"Ana", "Bia", "Caio"} {
		u := userModel.UserModel{Nome: name, Email: name + "@igreja.test", Senha: "x", IsActive: true}
		require.NoError(t, db.Create(&u).Error)
		w.users[name] = u
	}
	w.course = courseModel.CourseModel{Nome: "Curso", Descricao: "d", Slug: "curso"}
	require.NoError(t, db.Create(&w.course).Error)
	for i := 1; i <= 2; i++ {
		l := lessonModel.LessonModel{CursoID: w.course.ID, Titulo: "Aula", Descricao: "d", VideoURL: "https://v.test", Ordem: i}
		require.NoError(t, db.Create(&l).Error)
		w.lessons = append(w.lessons, l)
	}
	return w
}

func (w world) complete(t *testing.T, user string, lesson int, passed bool) {
	t.Helper()
	row := quizModel.LessonCompletionModel{
		UserID:     w.users[user].ID,
		LessonID:   w.lessons[lesson].ID,
		Completed:  passed,
		Tentativas: 1,
	}
	if passed {
		row.Score = 3
	}
	require.NoError(t, w.db.Create(&row).Error)
}

func TestGetCourseProgress(t *testing.T) {
	w := newWorld(t)
	w.complete(t, "Ana", 0, true)
	w.complete(t, "Ana", 1, false)
	ctx := context.Background()

	p, err := GetCourseProgress(ctx, w.db, w.users["Ana"].ID, w.course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalLessons)
	assert.Equal(t, 1, p.CompletedLessons)
	assert.Equal(t, 50, p.Progress)

	_, err = GetCourseProgress(ctx, w.db, w.users["Ana"].ID, uuid.New())
	assert.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestGetAllUsersProgress_Scopes(t *testing.T) {
	w := newWorld(t)
	w.complete(t, "Ana", 0, true)
	w.complete(t, "Ana", 1, true)
	w.complete(t, "Caio", 0, true)
	w.complete(t, "Bia", 0, false)
	require.NoError(t, w.db.Create(&courseModel.CourseEnrollmentModel{UserID: w.users["Caio"].ID, CourseID: w.course.ID}).Error)
	ctx := context.Background()

	all, err := GetAllUsersProgress(ctx, w.db, w.course.ID, UserScopeAll)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ana", all[0].UserName)
	assert.Equal(t, 100, all[0].Progress)
	assert.Equal(t, "Caio", all[1].UserName)
	assert.Equal(t, 50, all[1].Progress)

	enrolled, err := GetAllUsersProgress(ctx, w.db, w.course.ID, UserScopeEnrolled)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Caio", enrolled[0].UserName)
}

func TestParseUserScope(t *testing.T) {
	s, err := ParseUserScope("")
	assert.NoError(t, err)
	assert.Equal(t, UserScopeAll, s)

	s, err = ParseUserScope("enrolled")
	assert.NoError(t, err)
	assert.Equal(t, UserScopeEnrolled, s)

	_, err = ParseUserScope("everyone")
	assert.ErrorIs(t, err, ErrInvalidScope)
}
