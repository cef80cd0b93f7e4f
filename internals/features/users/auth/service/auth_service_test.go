package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churchhub_backend/internals/configs"
	authDto "churchhub_backend/internals/features/users/auth/dto"
	authModel "churchhub_backend/internals/features/users/auth/model"
	authRepo "churchhub_backend/internals/features/users/auth/repository"
	userModel "churchhub_backend/internals/features/users/user/model"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.TokenTTL = time.Hour

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}, &authModel.TokenBlacklist{}))
	return db
}

func register(t *testing.T, db *gorm.DB, email, senha string) *AuthResult {
	t.Helper()
	req := authDto.RegisterRequest{Nome: "Maria", Email: email, Senha: senha, IsAdmin: true}
	req.Normalize()
	require.NoError(t, req.Validate())
	res, err := Register(context.Background(), db, req)
	require.NoError(t, err)
	return res
}

func TestRegisterAndLogin(t *testing.T) {
	db := setup(t)
	ctx := context.Background()

	res := register(t, db, "Maria@Igreja.test", "segredo1")
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "maria@igreja.test", res.User.Email)
	assert.False(t, res.User.IsAdmin, "self sign-up never grants admin")
	assert.NotEqual(t, "segredo1", res.User.Senha)

	_, err := Register(ctx, db, authDto.RegisterRequest{Nome: "Outra", Email: "maria@igreja.test", Senha: "segredo2"})
	assert.True(t, errors.Is(err, ErrEmailTaken))

	login, err := Login(ctx, db, "maria@igreja.test", "segredo1")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, login.User.ID)

	_, err = Login(ctx, db, "maria@igreja.test", "errada")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	_, err = Login(ctx, db, "ninguem@igreja.test", "segredo1")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogin_InactiveAccount(t *testing.T) {
	db := setup(t)
	res := register(t, db, "joao@igreja.test", "segredo1")
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", res.User.ID).Update("is_active", false).Error)

	_, err := Login(context.Background(), db, "joao@igreja.test", "segredo1")
	assert.True(t, errors.Is(err, ErrAccountInactive))
}

func TestIssueToken_Claims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	configs.TokenTTL = 2 * time.Hour
	u := &userModel.UserModel{Nome: "Lia", IsLider: true}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tok, exp, err := IssueToken(u, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(2*time.Hour), exp)

	claims := jwt.MapClaims{}
	_, err = new(jwt.Parser).ParseWithClaims(tok, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	// the token is long expired relative to the wall clock
	var vErr *jwt.ValidationError
	if err != nil {
		require.True(t, errors.As(err, &vErr))
		assert.NotZero(t, vErr.Errors&jwt.ValidationErrorExpired)
	}
	assert.Equal(t, "lider", claims["role"])
	assert.Equal(t, "Lia", claims["nome"])

	got, err := TokenExpiry(tok)
	require.NoError(t, err)
	assert.Equal(t, exp.Unix(), got.Unix())

	configs.JWTSecret = ""
	_, _, err = IssueToken(u, now)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoginWithGoogleIdentity(t *testing.T) {
	db := setup(t)
	ctx := context.Background()

	t.Run("new identity creates a member", func(t *testing.T) {
		res, err := loginWithGoogleIdentity(ctx, db, "g-1", "nova@igreja.test", "Nova")
		require.NoError(t, err)
		assert.Equal(t, "Nova", res.User.Nome)
		require.NotNil(t, res.User.GoogleID)
		assert.Equal(t, "g-1", *res.User.GoogleID)
	})

	t.Run("same google id logs into the same account", func(t *testing.T) {
		a, err := loginWithGoogleIdentity(ctx, db, "g-1", "other@igreja.test", "")
		require.NoError(t, err)
		b, err := authRepo.FindUserByEmail(db, "nova@igreja.test")
		require.NoError(t, err)
		assert.Equal(t, b.ID, a.User.ID)
	})

	t.Run("existing email gets linked", func(t *testing.T) {
		existing := register(t, db, "antigo@igreja.test", "segredo1")
		res, err := loginWithGoogleIdentity(ctx, db, "g-2", "antigo@igreja.test", "Antigo")
		require.NoError(t, err)
		assert.Equal(t, existing.User.ID, res.User.ID)

		linked, err := authRepo.FindUserByGoogleID(db, "g-2")
		require.NoError(t, err)
		assert.Equal(t, existing.User.ID, linked.ID)

		// password login keeps working after linking
		_, err = Login(ctx, db, "antigo@igreja.test", "segredo1")
		assert.NoError(t, err)
	})

	t.Run("missing name falls back to email", func(t *testing.T) {
		res, err := loginWithGoogleIdentity(ctx, db, "g-3", "semnome@igreja.test", " ")
		require.NoError(t, err)
		assert.Equal(t, "semnome@igreja.test", res.User.Nome)
	})
}

func TestLoginGoogle_Disabled(t *testing.T) {
	db := setup(t)
	configs.GoogleClientID = ""
	_, err := LoginGoogle(context.Background(), db, "whatever")
	assert.True(t, errors.Is(err, ErrGoogleDisabled))
}

func TestLogoutBlacklistsToken(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	res := register(t, db, "sai@igreja.test", "segredo1")

	require.NoError(t, Logout(ctx, db, res.Token))
	require.NoError(t, Logout(ctx, db, res.Token))

	listed, err := authRepo.IsTokenBlacklisted(db, res.Token)
	require.NoError(t, err)
	assert.True(t, listed)

	var row authModel.TokenBlacklist
	require.NoError(t, db.Where("token = ?", res.Token).First(&row).Error)
	assert.WithinDuration(t, res.ExpiresAt, row.ExpiredAt, time.Second)

	n, err := authRepo.CleanupExpiredBlacklist(db, res.ExpiresAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestChangePassword(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	res := register(t, db, "troca@igreja.test", "segredo1")

	err := ChangePassword(ctx, db, res.User.ID, "errada", "novasenha")
	assert.True(t, errors.Is(err, ErrCurrentPasswordWrong))

	require.NoError(t, ChangePassword(ctx, db, res.User.ID, "segredo1", "novasenha"))
	_, err = Login(ctx, db, "troca@igreja.test", "novasenha")
	assert.NoError(t, err)
	_, err = Login(ctx, db, "troca@igreja.test", "segredo1")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
