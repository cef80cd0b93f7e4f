package service

import (
	"math"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/learning/progress/dto"
)

// UserRef is the minimal user identity the aggregator needs.
type UserRef struct {
	ID   uuid.UUID
	Name string
}

// Percent is round(100*done/total), 0 when total is 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// CourseProgress intersects a user-global completed set with the course's lessons.
func CourseProgress(courseLessonIDs []uuid.UUID, completed map[uuid.UUID]struct{}) dto.CourseProgressDTO {
	done := countCompleted(courseLessonIDs, completed)
	return dto.CourseProgressDTO{
		TotalLessons:     len(courseLessonIDs),
		CompletedLessons: done,
		Progress:         Percent(done, len(courseLessonIDs)),
	}
}

// AllUsersProgress computes progress for every given user, keeping input order
// and omitting users with no completed lesson in the course.
func AllUsersProgress(courseLessonIDs []uuid.UUID, users []UserRef, completedByUser map[uuid.UUID]map[uuid.UUID]struct{}) []dto.UserProgressDTO {
	out := make([]dto.UserProgressDTO, 0)
	total := len(courseLessonIDs)
	for _, u := range users {
		done := countCompleted(courseLessonIDs, completedByUser[u.ID])
		if done == 0 {
			continue
		}
		out = append(out, dto.UserProgressDTO{
			UserID:           u.ID,
			UserName:         u.Name,
			Progress:         Percent(done, total),
			CompletedLessons: done,
		})
	}
	return out
}

func countCompleted(lessonIDs []uuid.UUID, completed map[uuid.UUID]struct{}) int {
	if len(completed) == 0 {
		return 0
	}
	n := 0
	for _, id := range lessonIDs {
		if _, ok := completed[id]; ok {
			n++
		}
	}
	return n
}
