package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	userModel "churchhub_backend/internals/features/users/user/model"
)

const (
	TipoLouvor   = "louvor"
	TipoObreiros = "obreiros"
)

type ScheduleModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Mes         int            `gorm:"column:mes;not null;index:idx_schedules_periodo,priority:2" json:"mes"`
	Ano         int            `gorm:"column:ano;not null;index:idx_schedules_periodo,priority:1" json:"ano"`
	Tipo        string         `gorm:"column:tipo;size:10;not null;index" json:"tipo"`
	Data        datatypes.Date `gorm:"column:data;not null" json:"data"`
	Observacoes *string        `gorm:"column:observacoes;type:text" json:"observacoes"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Assignments []ScheduleAssignmentModel `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
}

func (ScheduleModel) TableName() string {
	return "schedules"
}

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type ScheduleAssignmentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ScheduleID uuid.UUID `gorm:"column:schedule_id;type:uuid;not null;uniqueIndex:uq_schedule_assignment,priority:1" json:"scheduleId"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_schedule_assignment,priority:3" json:"userId"`
	Posicao    string    `gorm:"column:posicao;size:20;not null;uniqueIndex:uq_schedule_assignment,priority:2" json:"posicao"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ScheduleAssignmentModel) TableName() string {
	return "schedule_assignments"
}

func (m *ScheduleAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
