package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	"churchhub_backend/internals/features/learning/progress/dto"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

// UserScope picks which users the all-users view covers.
type UserScope string

const (
	UserScopeAll      UserScope = "all"
	UserScopeEnrolled UserScope = "enrolled"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidScope   = errors.New("scope must be all or enrolled")
)

func ParseUserScope(s string) (UserScope, error) {
	switch UserScope(s) {
	case "", UserScopeAll:
		return UserScopeAll, nil
	case UserScopeEnrolled:
		return UserScopeEnrolled, nil
	}
	return UserScopeAll, ErrInvalidScope
}

func GetCourseProgress(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (dto.CourseProgressDTO, error) {
	tx := db.WithContext(ctx)
	lessonIDs, err := courseLessonIDs(tx, courseID)
	if err != nil {
		return dto.CourseProgressDTO{}, err
	}

	var done []uuid.UUID
	if err := tx.Model(&quizModel.LessonCompletionModel{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("lesson_id", &done).Error; err != nil {
		return dto.CourseProgressDTO{}, fmt.Errorf("load completions: %w", err)
	}
	return CourseProgress(lessonIDs, toSet(done)), nil
}

func GetAllUsersProgress(ctx context.Context, db *gorm.DB, courseID uuid.UUID, scope UserScope) ([]dto.UserProgressDTO, error) {
	tx := db.WithContext(ctx)
	lessonIDs, err := courseLessonIDs(tx, courseID)
	if err != nil {
		return nil, err
	}

	uq := tx.Model(&userModel.UserModel{}).Select("id", "nome").Order("nome ASC")
	if scope == UserScopeEnrolled {
		uq = uq.Where("id IN (?)", tx.Model(&courseModel.CourseEnrollmentModel{}).
			Select("user_id").Where("course_id = ?", courseID))
	}
	var users []userModel.UserModel
	if err := uq.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	refs := make([]UserRef, 0, len(users))
	for _, u := range users {
		refs = append(refs, UserRef{ID: u.ID, Name: u.Nome})
	}

	completedByUser := map[uuid.UUID]map[uuid.UUID]struct{}{}
	if len(lessonIDs) > 0 {
		var rows []struct {
			UserID   uuid.UUID
			LessonID uuid.UUID
		}
		if err := tx.Model(&quizModel.LessonCompletionModel{}).
			Select("user_id, lesson_id").
			Where("completed = ? AND lesson_id IN ?", true, lessonIDs).
			Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("load completions: %w", err)
		}
		for _, r := range rows {
			set, ok := completedByUser[r.UserID]
			if !ok {
				set = map[uuid.UUID]struct{}{}
				completedByUser[r.UserID] = set
			}
			set[r.LessonID] = struct{}{}
		}
	}
	return AllUsersProgress(lessonIDs, refs, completedByUser), nil
}

func courseLessonIDs(tx *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var n int64
	if err := tx.Model(&courseModel.CourseModel{}).Where("id = ?", courseID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrCourseNotFound
	}
	var ids []uuid.UUID
	if err := lessonModel.OrderedLessons(tx.Model(&lessonModel.LessonModel{})).
		Where("curso_id = ?", courseID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	return ids, nil
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
