package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authHelper "churchhub_backend/internals/features/users/auth/helper"
	"churchhub_backend/internals/features/users/user/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func TestSeedAdmin(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedAdmin(db, "", " Admin@Igreja.test ", "admin123"))
	var u model.UserModel
	require.NoError(t, db.Where("email = ?", "admin@igreja.test").First(&u).Error)
	assert.True(t, u.IsAdmin)
	assert.Equal(t, "Administrador", u.Nome)
	assert.NoError(t, authHelper.CheckPasswordHash(u.Senha, "admin123"))

	// second run leaves the password alone
	require.NoError(t, SeedAdmin(db, "Outro", "admin@igreja.test", "outra"))
	require.NoError(t, db.First(&u, "id = ?", u.ID).Error)
	assert.NoError(t, authHelper.CheckPasswordHash(u.Senha, "admin123"))

	var n int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSeedAdmin_PromotesExistingMember(t *testing.T) {
	db := newTestDB(t)
	m := model.UserModel{Nome: "Pastor", Email: "pastor@igreja.test", Senha: "x", IsActive: true}
	require.NoError(t, db.Create(&m).Error)

	require.NoError(t, SeedAdmin(db, "", "pastor@igreja.test", "whatever"))
	require.NoError(t, db.First(&m, "id = ?", m.ID).Error)
	assert.True(t, m.IsAdmin)
	assert.Equal(t, "x", m.Senha)
}

func TestSeedAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedAdmin(db, "", "", ""))

	var n int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
