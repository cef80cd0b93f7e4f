package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	"churchhub_backend/internals/features/learning/quizzes/model"
)

type QuizService struct {
	DB     *gorm.DB
	Policy CompletedAtPolicy
	Now    func() time.Time
}

func NewQuizService(db *gorm.DB, policy CompletedAtPolicy) *QuizService {
	return &QuizService{DB: db, Policy: policy, Now: time.Now}
}

type Submission struct {
	Grade
	Message     string
	Tentativas  int
	CompletedAt *time.Time
}

// GradeAndRecord grades the answers for a lesson and stores the outcome with a
// single INSERT ... ON CONFLICT (user_id, lesson_id) DO UPDATE, so concurrent
// submissions by the same user each add exactly one attempt.
func (s *QuizService) GradeAndRecord(ctx context.Context, userID, lessonID uuid.UUID, answers []string) (Submission, error) {
	if err := ValidateAnswers(answers); err != nil {
		return Submission{}, err
	}

	questions, err := s.questionsForLesson(ctx, lessonID)
	if err != nil {
		return Submission{}, err
	}
	grade, err := GradeAnswers(questions, answers)
	if err != nil {
		return Submission{}, err
	}

	now := s.Now().UTC()
	row := model.LessonCompletionModel{
		UserID:     userID,
		LessonID:   lessonID,
		Score:      grade.Score,
		Completed:  grade.Completed,
		Tentativas: 1,
	}
	if grade.Completed {
		row.CompletedAt = &now
	}

	var stored model.LessonCompletionModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"score":        gorm.Expr("excluded.score"),
				"completed":    gorm.Expr("excluded.completed"),
				"tentativas":   gorm.Expr("lesson_completions.tentativas + 1"),
				"completed_at": s.Policy.upsertExpr(),
				"updated_at":   gorm.Expr("excluded.updated_at"),
			}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("upsert lesson completion: %w", err)
		}
		return tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&stored).Error
	})
	if err != nil {
		return Submission{}, err
	}

	return Submission{
		Grade:       grade,
		Message:     GradeMessage(grade),
		Tentativas:  stored.Tentativas,
		CompletedAt: stored.CompletedAt,
	}, nil
}

// GetCompletion returns the stored row, or a zero row (not completed, score 0)
// when the user never submitted.
func (s *QuizService) GetCompletion(ctx context.Context, userID, lessonID uuid.UUID) (model.LessonCompletionModel, error) {
	var row model.LessonCompletionModel
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.LessonCompletionModel{UserID: userID, LessonID: lessonID}, nil
	}
	return row, err
}

// ListQuestions returns the lesson's questions ordered by ordem, whatever their count.
func (s *QuizService) ListQuestions(ctx context.Context, lessonID uuid.UUID) ([]model.QuestionModel, error) {
	if err := s.ensureLesson(ctx, lessonID); err != nil {
		return nil, err
	}
	var questions []model.QuestionModel
	err := s.DB.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Order("ordem ASC").
		Find(&questions).Error
	return questions, err
}

// ReplaceQuestions swaps the whole question set of a lesson in one transaction.
func (s *QuizService) ReplaceQuestions(ctx context.Context, lessonID uuid.UUID, questions []model.QuestionModel) ([]model.QuestionModel, error) {
	if len(questions) != model.QuestionsPerQuiz {
		return nil, fmt.Errorf("%w: a quiz needs exactly %d questions", ErrInvalidInput, model.QuestionsPerQuiz)
	}
	if err := s.ensureLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	out := make([]model.QuestionModel, len(questions))
	copy(out, questions)
	for i := range out {
		out[i].ID = uuid.Nil
		out[i].LessonID = lessonID
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ordem < out[j].Ordem })

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", lessonID).Delete(&model.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Create(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuizService) DeleteQuestions(ctx context.Context, lessonID uuid.UUID) error {
	if err := s.ensureLesson(ctx, lessonID); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Where("lesson_id = ?", lessonID).Delete(&model.QuestionModel{}).Error
}

func (s *QuizService) questionsForLesson(ctx context.Context, lessonID uuid.UUID) ([]model.QuestionModel, error) {
	questions, err := s.ListQuestions(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	if len(questions) != model.QuestionsPerQuiz {
		return nil, ErrQuizNotConfigured
	}
	return questions, nil
}

func (s *QuizService) ensureLesson(ctx context.Context, lessonID uuid.UUID) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&lessonModel.LessonModel{}).Where("id = ?", lessonID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrLessonNotFound
	}
	return nil
}
