package helper

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Fundamentos da Fé", 0, "fundamentos-da-fe"},
		{"  Oração & Intercessão!! ", 0, "oracao-intercessao"},
		{"Liderança---Cristã", 0, "lideranca-crista"},
		{"???", 0, "item"},
		{"abcdef-ghij", 7, "abcdef"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in, tt.max), tt.in)
	}
	assert.Len(t, Slugify(strings.Repeat("a", 300), 0), 100)
}

type slugRow struct {
	ID   int
	Slug string
}

func TestEnsureUniqueSlug(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Table("slug_rows").AutoMigrate(&slugRow{}))
	require.NoError(t, db.Table("slug_rows").Create(&[]slugRow{{ID: 1, Slug: "curso"}, {ID: 2, Slug: "Curso-2"}}).Error)

	ctx := context.Background()
	got, err := EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "curso", nil, 120)
	require.NoError(t, err)
	assert.Equal(t, "curso-3", got)

	got, err = EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "curso", 1, 120)
	require.NoError(t, err)
	assert.Equal(t, "curso", got)

	got, err = EnsureUniqueSlug(ctx, db, "slug_rows", "slug", "novo", nil, 120)
	require.NoError(t, err)
	assert.Equal(t, "novo", got)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(assertErr("UNIQUE constraint failed: users.email")))
	assert.True(t, IsUniqueViolation(assertErr(`duplicate key value violates unique constraint "idx_users_email"`)))
	assert.False(t, IsUniqueViolation(assertErr("connection refused")))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
