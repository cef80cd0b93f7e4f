package admin

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	authHelper "churchhub_backend/internals/features/users/auth/helper"
	"churchhub_backend/internals/features/users/user/model"
)

// SeedAdmin creates the first admin when no user with that email exists.
// Existing accounts are promoted, never overwritten.
func SeedAdmin(db *gorm.DB, nome, email, senha string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || senha == "" {
		log.Println("ℹ️ ADMIN_EMAIL/ADMIN_PASSWORD not set, admin seed skipped.")
		return nil
	}

	var existing model.UserModel
	err := db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.IsAdmin {
			log.Printf("ℹ️ Admin %s already exists, skipped.", email)
			return nil
		}
		log.Printf("✅ Promoting %s to admin", email)
		return db.Model(&existing).Update("is_admin", true).Error
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	hashed, err := authHelper.HashPassword(senha)
	if err != nil {
		return err
	}
	if strings.TrimSpace(nome) == "" {
		nome = "Administrador"
	}
	u := model.UserModel{Nome: nome, Email: email, Senha: hashed, IsAdmin: true, IsActive: true}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin %s created", email)
	return nil
}
