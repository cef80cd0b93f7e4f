package service

import (
	"context"
	"testing"

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

func newAnalyticsDB(t *testing.T) *gorm.DB {
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
	return db
}

func TestLoadCourseAnalytics(t *testing.T) {
	db := newAnalyticsDB(t)

	var users []userModel.UserModel
	for _, name := range []string{"Ana", "Bia", "Caio"} {
		u := userModel.UserModel{Nome: name, Email: name + "@igreja.test", Senha: "x", IsActive: true}
		require.NoError(t, db.Create(&u).Error)
		users = append(users, u)
	}
	ana, bia, caio := users[0], users[1], users[2]

	course := courseModel.CourseModel{Nome: "Discipulado", Descricao: "d", Slug: "discipulado"}
	require.NoError(t, db.Create(&course).Error)
	var lessons []lessonModel.LessonModel
	for i := 1; i <= 2; i++ {
		l := lessonModel.LessonModel{CursoID: course.ID, Titulo: "Aula", Descricao: "d", VideoURL: "https://v.test", Ordem: i}
		require.NoError(t, db.Create(&l).Error)
		lessons = append(lessons, l)
	}

	record := func(u userModel.UserModel, l lessonModel.LessonModel, passed bool) {
		row := quizModel.LessonCompletionModel{UserID: u.ID, LessonID: l.ID, Completed: passed, Tentativas: 1}
		if passed {
			row.Score = 3
		}
		require.NoError(t, db.Create(&row).Error)
	}
	record(ana, lessons[0], true)
	record(ana, lessons[1], true)
	record(bia, lessons[0], true)
	// failed attempts are not completions
	record(bia, lessons[1], false)
	record(caio, lessons[0], false)

	require.NoError(t, db.Create(&courseModel.CourseEnrollmentModel{UserID: ana.ID, CourseID: course.ID}).Error)

	got, err := LoadCourseAnalytics(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TotalCourses)
	assert.Equal(t, 2, got.TotalLessons)
	assert.Equal(t, 3, got.TotalCompletions)
	assert.Equal(t, 50, got.AverageCompletionRate)

	require.Len(t, got.CourseStats, 1)
	st := got.CourseStats[0]
	assert.Equal(t, course.ID, st.CourseID)
	assert.Equal(t, "Discipulado", st.CourseName)
	assert.Equal(t, 2, st.TotalLessons)
	assert.Equal(t, 3, st.TotalCompletions)
	assert.Equal(t, 2, st.StudentsStarted)
	assert.Equal(t, 1, st.StudentsCompleted)
	assert.Equal(t, 1, st.StudentsEnrolled)
	assert.Equal(t, 50, st.CompletionRate)
	assert.Equal(t, 100, st.EnrolledCompletionRate)
}

func TestLoadCourseAnalytics_Empty(t *testing.T) {
	db := newAnalyticsDB(t)

	got, err := LoadCourseAnalytics(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, got.TotalCourses)
	assert.Zero(t, got.AverageCompletionRate)
	assert.Empty(t, got.CourseStats)
}
