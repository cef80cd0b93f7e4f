package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCourseAnalytics(t *testing.T) {
	fe := CourseRow{ID: uuid.New(), Nome: "Fundamentos da Fé"}
	empty := CourseRow{ID: uuid.New(), Nome: "Em breve"}
	l1, l2 := uuid.New(), uuid.New()
	ana, bia, caio := uuid.New(), uuid.New(), uuid.New()

	lessons := []LessonRow{{ID: l1, CourseID: fe.ID}, {ID: l2, CourseID: fe.ID}}
	completions := []CompletionRow{
		{UserID: ana, LessonID: l1, Completed: true},
		{UserID: ana, LessonID: l2, Completed: true},
		{UserID: bia, LessonID: l1, Completed: true},
		{UserID: caio, LessonID: l2, Completed: false},
		// lesson that no longer exists
		{UserID: caio, LessonID: uuid.New(), Completed: true},
	}
	enrollments := []EnrollmentRow{
		{UserID: ana, CourseID: fe.ID},
		{UserID: bia, CourseID: fe.ID},
		{UserID: caio, CourseID: fe.ID},
		{UserID: caio, CourseID: fe.ID},
	}

	got := ComputeCourseAnalytics([]CourseRow{fe, empty}, lessons, completions, enrollments)

	assert.Equal(t, 2, got.TotalCourses)
	assert.Equal(t, 2, got.TotalLessons)
	assert.Equal(t, 3, got.TotalCompletions)
	assert.Equal(t, string(DenominatorStudentsStarted), got.CompletionRateBasis)
	require.Len(t, got.CourseStats, 2)

	s := got.CourseStats[0]
	assert.Equal(t, fe.ID, s.CourseID)
	assert.Equal(t, 2, s.TotalLessons)
	assert.Equal(t, 3, s.TotalCompletions)
	assert.Equal(t, 2, s.StudentsStarted)
	assert.Equal(t, 1, s.StudentsCompleted)
	assert.Equal(t, 50, s.CompletionRate)
	assert.Equal(t, 3, s.StudentsEnrolled)
	assert.Equal(t, 33, s.EnrolledCompletionRate)

	z := got.CourseStats[1]
	assert.Equal(t, "Em breve", z.CourseName)
	assert.Zero(t, z.TotalLessons)
	assert.Zero(t, z.StudentsStarted)
	assert.Zero(t, z.CompletionRate)

	// (50 + 0) / 2
	assert.Equal(t, 25, got.AverageCompletionRate)
}

func TestComputeCourseAnalytics_Empty(t *testing.T) {
	got := ComputeCourseAnalytics(nil, nil, nil, nil)
	assert.Zero(t, got.TotalCourses)
	assert.Zero(t, got.AverageCompletionRate)
	assert.NotNil(t, got.CourseStats)
}

func TestEnrolledRateOnlyCountsEnrolledFinishers(t *testing.T) {
	c := CourseRow{ID: uuid.New(), Nome: "Liderança"}
	l := uuid.New()
	walkIn, member := uuid.New(), uuid.New()

	got := ComputeCourseAnalytics(
		[]CourseRow{c},
		[]LessonRow{{ID: l, CourseID: c.ID}},
		[]CompletionRow{
			{UserID: walkIn, LessonID: l, Completed: true},
			{UserID: member, LessonID: l, Completed: true},
		},
		[]EnrollmentRow{{UserID: member, CourseID: c.ID}},
	)
	s := got.CourseStats[0]
	assert.Equal(t, 100, s.CompletionRate)
	assert.Equal(t, 100, s.EnrolledCompletionRate)
	assert.Equal(t, 1, s.StudentsEnrolled)
	assert.Equal(t, 2, s.StudentsCompleted)
}
