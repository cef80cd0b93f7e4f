package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	"churchhub_backend/internals/features/learning/quizzes/dto"
	"churchhub_backend/internals/features/learning/quizzes/model"
	"churchhub_backend/internals/features/learning/quizzes/service"
	helper "churchhub_backend/internals/helpers"
)

type QuizController struct {
	DB      *gorm.DB
	Service *service.QuizService
}

func NewQuizController(db *gorm.DB) *QuizController {
	policy, err := service.ParseCompletedAtPolicy(configs.GetEnv("QUIZ_COMPLETED_AT_POLICY"))
	if err != nil {
		log.Printf("[WARN] %v, using %s", err, policy)
	}
	return &QuizController{DB: db, Service: service.NewQuizService(db, policy)}
}

// =============================
// ✅ Submit answers (member)
// POST /api/lessons/:id/complete
// =============================
func (ctrl *QuizController) CompleteLesson(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.SubmitAnswersRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidInput, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "Send exactly 3 answers, each A, B or C", helper.FieldErrors(err))
	}

	res, err := ctrl.Service.GradeAndRecord(c.UserContext(), userID, lessonID, body.Respostas)
	if err != nil {
		return quizError(c, err, "CompleteLesson")
	}

	return helper.JsonOK(c, res.Message, dto.QuizResultDTO{
		Score:          res.Score,
		Completed:      res.Completed,
		TotalQuestions: model.QuestionsPerQuiz,
		Message:        res.Message,
		Tentativas:     res.Tentativas,
		CompletedAt:    res.CompletedAt,
	})
}

// =============================
// 🔍 Completion status (member)
// GET /api/lessons/:id/completion
// =============================
func (ctrl *QuizController) GetCompletion(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	row, err := ctrl.Service.GetCompletion(c.UserContext(), userID, lessonID)
	if err != nil {
		return quizError(c, err, "GetCompletion")
	}
	return helper.JsonOK(c, "ok", dto.ToCompletionStatusDTO(row))
}

// =============================
// 📄 Questions without answers (member)
// GET /api/lessons/:id/questions
// =============================
func (ctrl *QuizController) GetQuestions(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	list, err := ctrl.Service.ListQuestions(c.UserContext(), lessonID)
	if err != nil {
		return quizError(c, err, "GetQuestions")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"configured": len(list) == model.QuestionsPerQuiz,
		"questions":  dto.ToPublicQuestionDTOs(list),
	})
}

// =============================
// 📄 Questions with answers (admin)
// GET /api/admin/lessons/:id/questions
// =============================
func (ctrl *QuizController) GetQuestionsAdmin(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	list, err := ctrl.Service.ListQuestions(c.UserContext(), lessonID)
	if err != nil {
		return quizError(c, err, "GetQuestionsAdmin")
	}
	return helper.JsonOK(c, "ok", dto.ToQuestionDTOs(list))
}

// =============================
// ➕ Replace the quiz (admin)
// POST /api/admin/lessons/:id/questions
// =============================
func (ctrl *QuizController) ReplaceQuestions(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body dto.ReplaceQuestionsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidInput, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "A quiz needs exactly 3 valid questions", helper.FieldErrors(err))
	}

	created, err := ctrl.Service.ReplaceQuestions(c.UserContext(), lessonID, body.ToModels())
	if err != nil {
		return quizError(c, err, "ReplaceQuestions")
	}
	return helper.JsonCreated(c, "Quiz saved", dto.ToQuestionDTOs(created))
}

// =============================
// ❌ Remove the quiz (admin)
// DELETE /api/admin/lessons/:id/questions
// =============================
func (ctrl *QuizController) DeleteQuestions(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Service.DeleteQuestions(c.UserContext(), lessonID); err != nil {
		return quizError(c, err, "DeleteQuestions")
	}
	return helper.JsonDeleted(c, "Quiz removed", nil)
}

func quizError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeInvalidInput, err.Error())
	case errors.Is(err, service.ErrQuizNotConfigured):
		return helper.JsonErrorCode(c, fiber.StatusBadRequest, helper.ErrCodeQuizNotConfigured, "This lesson's quiz is not configured")
	case errors.Is(err, service.ErrLessonNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Lesson not found")
	default:
		log.Printf("[ERROR] %s: %v", op, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}
