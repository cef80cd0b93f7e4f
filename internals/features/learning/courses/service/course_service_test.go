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

	"churchhub_backend/internals/features/learning/courses/model"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&model.CourseModel{},
		&model.CourseEnrollmentModel{},
		&lessonModel.LessonModel{},
	))
	return db
}

func createCourse(t *testing.T, db *gorm.DB, nome string) model.CourseModel {
	t.Helper()
	c := model.CourseModel{Nome: nome, Descricao: "d"}
	require.NoError(t, AssignSlug(context.Background(), db, &c))
	require.NoError(t, db.Create(&c).Error)
	return c
}

func TestAssignSlug_Unique(t *testing.T) {
	db := newTestDB(t)

	a := createCourse(t, db, "Fundamentos da Fé")
	b := createCourse(t, db, "Fundamentos da fé!")
	assert.Equal(t, "fundamentos-da-fe", a.Slug)
	assert.Equal(t, "fundamentos-da-fe-2", b.Slug)

	// renaming to the same name keeps the slug
	require.NoError(t, AssignSlug(context.Background(), db, &a))
	assert.Equal(t, "fundamentos-da-fe", a.Slug)
}

func TestEnroll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	c := createCourse(t, db, "Liderança Cristã")

	ana := userModel.UserModel{Nome: "Ana", Email: "ana@igreja.test", Senha: "x", IsActive: true}
	bia := userModel.UserModel{Nome: "Bia", Email: "bia@igreja.test", Senha: "x", IsActive: true}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, db.Create(&bia).Error)

	n, err := Enroll(ctx, db, c.ID, []uuid.UUID{ana.ID, ana.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = Enroll(ctx, db, c.ID, []uuid.UUID{ana.ID, bia.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = Enroll(ctx, db, c.ID, []uuid.UUID{uuid.New()})
	assert.True(t, errors.Is(err, ErrUnknownUser))

	_, err = Enroll(ctx, db, uuid.New(), []uuid.UUID{ana.ID})
	assert.True(t, errors.Is(err, ErrCourseNotFound))

	list, err := ListEnrollments(ctx, db, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].UserName)

	mine, err := MyCourses(ctx, db, bia.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, c.ID, mine[0].ID)

	removed, err := Unenroll(ctx, db, c.ID, ana.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = Unenroll(ctx, db, c.ID, ana.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestLessonCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	a := createCourse(t, db, "A")
	b := createCourse(t, db, "B")
	for i := 1; i <= 3; i++ {
		l := lessonModel.LessonModel{CursoID: a.ID, Titulo: "t", Descricao: "d", VideoURL: "https://v.test", Ordem: i}
		require.NoError(t, db.Create(&l).Error)
	}

	counts, err := LessonCounts(ctx, db, []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts[a.ID])
	assert.Zero(t, counts[b.ID])
}
