package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/learning/quizzes/controller"
)

// QuizUserRoutes: lessons is /api/lessons behind auth.
func QuizUserRoutes(lessons fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	lessons.Get("/:id/questions", ctrl.GetQuestions)
	lessons.Post("/:id/complete", ctrl.CompleteLesson)
	lessons.Get("/:id/completion", ctrl.GetCompletion)
}

func QuizAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuizController(db)

	q := admin.Group("/lessons/:id/questions")
	q.Get("/", ctrl.GetQuestionsAdmin)
	q.Post("/", ctrl.ReplaceQuestions)
	q.Delete("/", ctrl.DeleteQuestions)
}
