package model

import (
	"time"

	"github.com/google/uuid"

	userModel "churchhub_backend/internals/features/users/user/model"
)

// CourseEnrollmentModel: presence of the row is the only enrollment signal.
type CourseEnrollmentModel struct {
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"userId"`
	CourseID   uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;index" json:"courseId"`
	EnrolledAt time.Time `gorm:"column:enrolled_at;autoCreateTime" json:"enrolledAt"`

	User   *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course *CourseModel         `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}
