package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"churchhub_backend/internals/features/learning/courses/dto"
	"churchhub_backend/internals/features/learning/courses/model"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	helper "churchhub_backend/internals/helpers"
)

const slugMaxLen = 120

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrUnknownUser    = errors.New("one or more users do not exist")
)

func FindCourse(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.CourseModel, error) {
	var m model.CourseModel
	if err := db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &m, nil
}

// AssignSlug derives a unique slug from the course name.
func AssignSlug(ctx context.Context, db *gorm.DB, m *model.CourseModel) error {
	var exclude any
	if m.ID != uuid.Nil {
		exclude = m.ID
	}
	slug, err := helper.EnsureUniqueSlug(ctx, db, model.CourseModel{}.TableName(), "slug",
		helper.Slugify(m.Nome, slugMaxLen), exclude, slugMaxLen)
	if err != nil {
		return err
	}
	m.Slug = slug
	return nil
}

// LessonCounts returns lesson count per course id in one grouped query.
func LessonCounts(ctx context.Context, db *gorm.DB, courseIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(courseIDs))
	if len(courseIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		CursoID uuid.UUID
		N       int64
	}
	if err := db.WithContext(ctx).Model(&lessonModel.LessonModel{}).
		Select("curso_id, COUNT(*) AS n").
		Where("curso_id IN ?", courseIDs).
		Group("curso_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.CursoID] = r.N
	}
	return out, nil
}

// Enroll adds the users to the course; existing enrollments are left untouched.
func Enroll(ctx context.Context, db *gorm.DB, courseID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	tx := db.WithContext(ctx)
	if _, err := FindCourse(ctx, db, courseID); err != nil {
		return 0, err
	}

	ids := dedupe(userIDs)
	var known int64
	if err := tx.Table("users").Where("id IN ?", ids).Count(&known).Error; err != nil {
		return 0, err
	}
	if known != int64(len(ids)) {
		return 0, ErrUnknownUser
	}

	rows := make([]model.CourseEnrollmentModel, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, model.CourseEnrollmentModel{UserID: id, CourseID: courseID})
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}

func Unenroll(ctx context.Context, db *gorm.DB, courseID, userID uuid.UUID) (bool, error) {
	res := db.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Delete(&model.CourseEnrollmentModel{})
	return res.RowsAffected > 0, res.Error
}

func ListEnrollments(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]dto.EnrollmentDTO, error) {
	var out []dto.EnrollmentDTO
	err := db.WithContext(ctx).
		Table("course_enrollments AS e").
		Select("e.user_id, u.nome AS user_name, u.email, e.enrolled_at").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("e.course_id = ?", courseID).
		Order("u.nome ASC").
		Scan(&out).Error
	return out, err
}

// EnrolledUserIDs feeds the enrolled-only progress scope.
func EnrolledUserIDs(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&model.CourseEnrollmentModel{}).
		Where("course_id = ?", courseID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// MyCourses lists courses the user is enrolled in, newest enrollment first.
func MyCourses(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]model.CourseModel, error) {
	var list []model.CourseModel
	err := db.WithContext(ctx).
		Joins("JOIN course_enrollments e ON e.course_id = courses.id").
		Where("e.user_id = ?", userID).
		Order("e.enrolled_at DESC").
		Find(&list).Error
	return list, err
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
