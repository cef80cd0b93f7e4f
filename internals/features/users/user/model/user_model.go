package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"churchhub_backend/internals/constants"
)

// UserModel merepresentasikan tabel users: a church member and their login.
type UserModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Nome              string          `gorm:"column:nome;type:text;not null" json:"nome"`
	Email             string          `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Senha             string          `gorm:"column:senha;type:text;not null" json:"-"`
	GoogleID          *string         `gorm:"column:google_id;size:255;uniqueIndex" json:"-"`
	DataNascimento    *datatypes.Date `gorm:"column:data_nascimento" json:"dataNascimento"`
	Profissao         *string         `gorm:"column:profissao;type:text" json:"profissao"`
	Endereco          *string         `gorm:"column:endereco;type:text" json:"endereco"`
	Bairro            *string         `gorm:"column:bairro;type:text" json:"bairro"`
	Cidade            *string         `gorm:"column:cidade;type:text" json:"cidade"`
	Whatsapp          *string         `gorm:"column:whatsapp;type:text" json:"whatsapp"`
	MinisterioLouvor  bool            `gorm:"column:ministerio_louvor;not null;default:false" json:"ministerioLouvor"`
	MinisterioObreiro bool            `gorm:"column:ministerio_obreiro;not null;default:false" json:"ministerioObreiro"`
	IsAdmin           bool            `gorm:"column:is_admin;not null;default:false" json:"isAdmin"`
	IsLider           bool            `gorm:"column:is_lider;not null;default:false" json:"isLider"`
	IsActive          bool            `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *UserModel) Role() string {
	return constants.RoleFor(u.IsAdmin, u.IsLider)
}
