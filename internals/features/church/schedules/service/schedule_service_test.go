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

	"churchhub_backend/internals/features/church/schedules/dto"
	"churchhub_backend/internals/features/church/schedules/model"
	userModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &model.ScheduleModel{}, &model.ScheduleAssignmentModel{}))
	return db
}

func newSchedule(t *testing.T, db *gorm.DB, tipo, data string) model.ScheduleModel {
	t.Helper()
	req := dto.CreateScheduleRequest{Tipo: tipo, Data: data}
	req.Normalize()
	require.NoError(t, req.Validate())
	s, err := req.ToModel()
	require.NoError(t, err)
	require.NoError(t, db.Create(s).Error)
	return *s
}

func newMember(t *testing.T, db *gorm.DB, nome string, louvor, obreiro bool) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{Nome: nome, Email: nome + "@igreja.test", Senha: "x", IsActive: true,
		MinisterioLouvor: louvor, MinisterioObreiro: obreiro}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestCreateScheduleDerivesPeriod(t *testing.T) {
	db := newTestDB(t)
	s := newSchedule(t, db, " Louvor ", "2024-08-04")
	assert.Equal(t, 8, s.Mes)
	assert.Equal(t, 2024, s.Ano)
	assert.Equal(t, model.TipoLouvor, s.Tipo)
}

func TestAssign(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	culto := newSchedule(t, db, model.TipoLouvor, "2024-08-04")
	ana := newMember(t, db, "Ana", true, false)
	beto := newMember(t, db, "Beto", false, true)

	a, err := Assign(ctx, db, culto.ID, ana.ID, "voz")
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.UserName)

	_, err = Assign(ctx, db, culto.ID, ana.ID, "voz")
	assert.True(t, helper.IsUniqueViolation(err), "%v", err)

	_, err = Assign(ctx, db, culto.ID, beto.ID, "teclado")
	assert.True(t, errors.Is(err, ErrMinistryRequired))

	_, err = Assign(ctx, db, culto.ID, ana.ID, "obreiro-1")
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	_, err = Assign(ctx, db, culto.ID, uuid.New(), "baixo")
	assert.True(t, errors.Is(err, ErrUserNotFound))

	_, err = Assign(ctx, db, uuid.New(), ana.ID, "baixo")
	assert.True(t, errors.Is(err, ErrScheduleNotFound))

	got, err := GetSchedule(ctx, db, culto.ID)
	require.NoError(t, err)
	require.Len(t, got.Assignments, 1)
	assert.Equal(t, "voz", got.Assignments[0].Posicao)
	assert.Equal(t, "2024-08-04", got.Data)
}

func TestUpdateAndDeleteAssignment(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	culto := newSchedule(t, db, model.TipoObreiros, "2024-09-01")
	beto := newMember(t, db, "Beto", false, true)
	caio := newMember(t, db, "Caio", false, true)
	dani := newMember(t, db, "Dani", true, false)

	a, err := Assign(ctx, db, culto.ID, beto.ID, "obreiro-0")
	require.NoError(t, err)

	pos := "obreiro-2"
	upd, err := UpdateAssignment(ctx, db, a.ID, &caio.ID, &pos)
	require.NoError(t, err)
	assert.Equal(t, caio.ID, upd.UserID)
	assert.Equal(t, "obreiro-2", upd.Posicao)

	_, err = UpdateAssignment(ctx, db, a.ID, &dani.ID, nil)
	assert.True(t, errors.Is(err, ErrMinistryRequired))

	require.NoError(t, DeleteAssignment(ctx, db, a.ID))
	assert.True(t, errors.Is(DeleteAssignment(ctx, db, a.ID), ErrAssignmentNotFound))
}

func TestListSchedules(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	newSchedule(t, db, model.TipoObreiros, "2024-08-11")
	newSchedule(t, db, model.TipoLouvor, "2024-08-04")
	newSchedule(t, db, model.TipoLouvor, "2024-09-01")

	aug, err := ListSchedules(ctx, db, ListFilter{Mes: 8, Ano: 2024})
	require.NoError(t, err)
	require.Len(t, aug, 2)
	assert.Equal(t, "2024-08-04", aug[0].Data)
	assert.NotNil(t, aug[0].Assignments)

	louvor, err := ListSchedules(ctx, db, ListFilter{Tipo: model.TipoLouvor})
	require.NoError(t, err)
	assert.Len(t, louvor, 2)

	none, err := ListSchedules(ctx, db, ListFilter{Ano: 1999})
	require.NoError(t, err)
	assert.Empty(t, none)
}
