package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	TipoPDF   = "pdf"
	TipoVideo = "video"
)

type MaterialModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Titulo     string         `gorm:"column:titulo;type:text;not null" json:"titulo"`
	Descricao  *string        `gorm:"column:descricao;type:text" json:"descricao"`
	ArquivoURL string         `gorm:"column:arquivo_url;type:text;not null" json:"arquivoUrl"`
	Tipo       string         `gorm:"column:tipo;size:10;not null;default:pdf;index" json:"tipo"`
	Tags       pq.StringArray `gorm:"column:tags;type:text[];not null;default:'{}'" json:"tags"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

func (m *MaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Tags == nil {
		m.Tags = pq.StringArray{}
	}
	return nil
}
