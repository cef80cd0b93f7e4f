package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome         string    `gorm:"column:nome;type:text;not null" json:"nome"`
	Whatsapp     *string   `gorm:"column:whatsapp;type:text" json:"whatsapp"`
	ComoConheceu *string   `gorm:"column:como_conheceu;type:text" json:"comoConheceu"`
	Culto        *string   `gorm:"column:culto;type:text" json:"culto"`
	MembrouSe    bool      `gorm:"column:membrou_se;not null;default:false" json:"membrouSe"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (VisitorModel) TableName() string {
	return "visitors"
}

func (m *VisitorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
