package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Titulo    string         `gorm:"column:titulo;type:text;not null" json:"titulo"`
	Descricao string         `gorm:"column:descricao;type:text;not null" json:"descricao"`
	Data      datatypes.Date `gorm:"column:data;not null;index" json:"data"`
	Local     string         `gorm:"column:local;type:text;not null" json:"local"`
	Imagem    *string        `gorm:"column:imagem;type:text" json:"imagem"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (EventModel) TableName() string {
	return "events"
}

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
