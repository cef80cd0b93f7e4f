package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
)

type LessonModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CursoID   uuid.UUID `gorm:"column:curso_id;type:uuid;not null;index:idx_lessons_curso_ordem,priority:1" json:"cursoId"`
	Titulo    string    `gorm:"column:titulo;type:text;not null" json:"titulo"`
	Descricao string    `gorm:"column:descricao;type:text;not null" json:"descricao"`
	VideoURL  string    `gorm:"column:video_url;type:text;not null" json:"videoUrl"`
	Ordem     int       `gorm:"column:ordem;not null;default:0;index:idx_lessons_curso_ordem,priority:2" json:"ordem"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Course *courseModel.CourseModel `gorm:"foreignKey:CursoID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LessonModel) TableName() string {
	return "lessons"
}

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OrderedLessons scopes a query to the stable lesson order: ordem, then
// insertion time, then id.
func OrderedLessons(db *gorm.DB) *gorm.DB {
	return db.Order("ordem ASC").Order("created_at ASC").Order("id ASC")
}
