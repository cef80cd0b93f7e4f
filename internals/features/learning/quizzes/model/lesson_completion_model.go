package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

// LessonCompletionModel: one row per (user, lesson), enforced by
// uq_lesson_completions_user_lesson which the grading upsert targets.
type LessonCompletionModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_lesson_completions_user_lesson,priority:1" json:"userId"`
	LessonID    uuid.UUID  `gorm:"column:lesson_id;type:uuid;not null;uniqueIndex:uq_lesson_completions_user_lesson,priority:2;index" json:"lessonId"`
	Score       int        `gorm:"column:score;not null;default:0" json:"score"`
	Completed   bool       `gorm:"column:completed;not null;default:false" json:"completed"`
	Tentativas  int        `gorm:"column:tentativas;not null;default:1" json:"tentativas"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	User   *userModel.UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Lesson *lessonModel.LessonModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LessonCompletionModel) TableName() string {
	return "lesson_completions"
}

func (m *LessonCompletionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
