package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusArchived = "archived"
)

func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusArchived
}

type PrayerRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string    `gorm:"column:nome;type:text;not null" json:"nome"`
	Pedido    string    `gorm:"column:pedido;type:text;not null" json:"pedido"`
	Status    string    `gorm:"column:status;size:10;not null;default:pending;index" json:"status"`
	IsPublic  bool      `gorm:"column:is_public;not null;default:false" json:"isPublic"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PrayerRequestModel) TableName() string {
	return "prayer_requests"
}

func (m *PrayerRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = StatusPending
	}
	return nil
}
