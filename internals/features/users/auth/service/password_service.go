package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "churchhub_backend/internals/features/users/auth/helper"
	authRepo "churchhub_backend/internals/features/users/auth/repository"
)

var ErrCurrentPasswordWrong = errors.New("current password incorrect")

// ChangePassword checks the current password before storing the new hash.
func ChangePassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, current, next string) error {
	tx := db.WithContext(ctx)
	user, err := authRepo.FindUserByID(tx, userID)
	if err != nil {
		return err
	}
	if err := authHelper.CheckPasswordHash(user.Senha, current); err != nil {
		return ErrCurrentPasswordWrong
	}
	hashed, err := authHelper.HashPassword(next)
	if err != nil {
		return err
	}
	return authRepo.UpdateUserPassword(tx, userID, hashed)
}
