package database

import (
	"log"

	"gorm.io/gorm"

	eventModel "churchhub_backend/internals/features/church/events/model"
	materialModel "churchhub_backend/internals/features/church/materials/model"
	prayerModel "churchhub_backend/internals/features/church/prayers/model"
	scheduleModel "churchhub_backend/internals/features/church/schedules/model"
	visitorModel "churchhub_backend/internals/features/church/visitors/model"
	courseModel "churchhub_backend/internals/features/learning/courses/model"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
	authModel "churchhub_backend/internals/features/users/auth/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

// Models lists every table, parents before children.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&courseModel.CourseModel{},
		&courseModel.CourseEnrollmentModel{},
		&lessonModel.LessonModel{},
		&quizModel.QuestionModel{},
		&quizModel.LessonCompletionModel{},
		&eventModel.EventModel{},
		&materialModel.MaterialModel{},
		&prayerModel.PrayerRequestModel{},
		&visitorModel.VisitorModel{},
		&scheduleModel.ScheduleModel{},
		&scheduleModel.ScheduleAssignmentModel{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("[ERROR] AutoMigrate %T: %v", m, err)
			return err
		}
	}
	log.Println("✅ Schema migrated.")
	return nil
}
