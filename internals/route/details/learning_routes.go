package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "churchhub_backend/internals/features/learning/analytics/route"
	courseRoute "churchhub_backend/internals/features/learning/courses/route"
	lessonRoute "churchhub_backend/internals/features/learning/lessons/route"
	progressRoute "churchhub_backend/internals/features/learning/progress/route"
	quizRoute "churchhub_backend/internals/features/learning/quizzes/route"
)

func LearningUserRoutes(member Groups, db *gorm.DB) {
	courseRoute.CourseUserRoutes(member.Courses, member.My, db)
	lessonRoute.LessonUserRoutes(member.Courses, member.Lessons, db)
	quizRoute.QuizUserRoutes(member.Lessons, db)
	progressRoute.ProgressUserRoutes(member.Courses, db)
}

func LearningAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseRoute.CourseAdminRoutes(admin, db)
	lessonRoute.LessonAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
	progressRoute.ProgressAdminRoutes(admin, db)
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}
