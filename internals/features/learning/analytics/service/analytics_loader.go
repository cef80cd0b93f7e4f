package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	"churchhub_backend/internals/features/learning/analytics/dto"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
)

// LoadCourseAnalytics reads the four tables once each and folds them.
func LoadCourseAnalytics(ctx context.Context, db *gorm.DB) (dto.CourseAnalyticsDTO, error) {
	tx := db.WithContext(ctx)

	var courses []CourseRow
	if err := tx.Model(&courseModel.CourseModel{}).
		Select("id, nome").
		Order("created_at ASC").
		Scan(&courses).Error; err != nil {
		return dto.CourseAnalyticsDTO{}, fmt.Errorf("load courses: %w", err)
	}

	var lessons []LessonRow
	if err := tx.Model(&lessonModel.LessonModel{}).
		Select("id, curso_id AS course_id").
		Scan(&lessons).Error; err != nil {
		return dto.CourseAnalyticsDTO{}, fmt.Errorf("load lessons: %w", err)
	}

	var completions []CompletionRow
	if err := tx.Model(&quizModel.LessonCompletionModel{}).
		Select("user_id, lesson_id, completed").
		Where("completed = ?", true).
		Scan(&completions).Error; err != nil {
		return dto.CourseAnalyticsDTO{}, fmt.Errorf("load completions: %w", err)
	}

	var enrollments []EnrollmentRow
	if err := tx.Model(&courseModel.CourseEnrollmentModel{}).
		Select("user_id, course_id").
		Scan(&enrollments).Error; err != nil {
		return dto.CourseAnalyticsDTO{}, fmt.Errorf("load enrollments: %w", err)
	}

	return ComputeCourseAnalytics(courses, lessons, completions, enrollments), nil
}
