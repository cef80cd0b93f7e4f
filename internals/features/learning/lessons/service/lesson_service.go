package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	"churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
)

var (
	ErrLessonNotFound = errors.New("lesson not found")
	ErrCourseNotFound = errors.New("course not found")
)

// ListByCourse returns the course's lessons in stable order.
func ListByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.LessonModel, error) {
	if err := ensureCourse(ctx, db, courseID); err != nil {
		return nil, err
	}
	var list []model.LessonModel
	err := model.OrderedLessons(db.WithContext(ctx)).Where("curso_id = ?", courseID).Find(&list).Error
	return list, err
}

func Find(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.LessonModel, error) {
	var m model.LessonModel
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Create appends the lesson after the current last one when ordem is 0.
func Create(ctx context.Context, db *gorm.DB, m *model.LessonModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCourse(ctx, tx, m.CursoID); err != nil {
			return err
		}
		if m.Ordem == 0 {
			var maxOrdem *int
			if err := tx.Model(&model.LessonModel{}).
				Where("curso_id = ?", m.CursoID).
				Select("MAX(ordem)").
				Scan(&maxOrdem).Error; err != nil {
				return err
			}
			if maxOrdem != nil {
				m.Ordem = *maxOrdem + 1
			} else {
				m.Ordem = 1
			}
		}
		return tx.Create(m).Error
	})
}

func Save(ctx context.Context, db *gorm.DB, m *model.LessonModel) error {
	return db.WithContext(ctx).Save(m).Error
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.LessonModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}

// CompletedSet returns which of lessonIDs the user has passed.
func CompletedSet(ctx context.Context, db *gorm.DB, userID uuid.UUID, lessonIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(lessonIDs))
	if len(lessonIDs) == 0 {
		return out, nil
	}
	var done []uuid.UUID
	if err := db.WithContext(ctx).Model(&quizModel.LessonCompletionModel{}).
		Where("user_id = ? AND completed = ? AND lesson_id IN ?", userID, true, lessonIDs).
		Pluck("lesson_id", &done).Error; err != nil {
		return nil, err
	}
	for _, id := range done {
		out[id] = true
	}
	return out, nil
}

func ensureCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	var n int64
	if err := db.WithContext(ctx).Model(&courseModel.CourseModel{}).Where("id = ?", courseID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrCourseNotFound
	}
	return nil
}
