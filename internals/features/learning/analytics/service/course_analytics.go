package service

import (
	"math"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/learning/analytics/dto"
)

// Denominator names the population a completion rate is measured against.
type Denominator string

const (
	// students with at least one passed lesson in the course
	DenominatorStudentsStarted Denominator = "studentsStarted"
	// students holding an enrollment row for the course
	DenominatorStudentsEnrolled Denominator = "studentsEnrolled"
)

// CompletionRateDenominator backs CourseStat.CompletionRate; the enrolled view
// is always reported alongside in EnrolledCompletionRate.
const CompletionRateDenominator = DenominatorStudentsStarted

type CourseRow struct {
	ID   uuid.UUID
	Nome string
}

type LessonRow struct {
	ID       uuid.UUID
	CourseID uuid.UUID
}

type CompletionRow struct {
	UserID    uuid.UUID
	LessonID  uuid.UUID
	Completed bool
}

type EnrollmentRow struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
}

// ComputeCourseAnalytics folds everything in one pass over lessons, one over
// completions and one over enrollments. Courses keep their input order.
func ComputeCourseAnalytics(courses []CourseRow, lessons []LessonRow, completions []CompletionRow, enrollments []EnrollmentRow) dto.CourseAnalyticsDTO {
	lessonCourse := make(map[uuid.UUID]uuid.UUID, len(lessons))
	lessonsPerCourse := make(map[uuid.UUID]int, len(courses))
	for _, l := range lessons {
		lessonCourse[l.ID] = l.CourseID
		lessonsPerCourse[l.CourseID]++
	}

	known := make(map[uuid.UUID]struct{}, len(courses))
	for _, c := range courses {
		known[c.ID] = struct{}{}
	}

	// course -> user -> distinct passed lessons
	perUser := make(map[uuid.UUID]map[uuid.UUID]map[uuid.UUID]struct{}, len(courses))
	completionsPerCourse := make(map[uuid.UUID]int, len(courses))
	totalCompletions := 0
	for _, cp := range completions {
		if !cp.Completed {
			continue
		}
		courseID, ok := lessonCourse[cp.LessonID]
		if !ok {
			continue
		}
		if _, ok := known[courseID]; !ok {
			continue
		}
		totalCompletions++
		completionsPerCourse[courseID]++

		users, ok := perUser[courseID]
		if !ok {
			users = map[uuid.UUID]map[uuid.UUID]struct{}{}
			perUser[courseID] = users
		}
		set, ok := users[cp.UserID]
		if !ok {
			set = map[uuid.UUID]struct{}{}
			users[cp.UserID] = set
		}
		set[cp.LessonID] = struct{}{}
	}

	enrolled := make(map[uuid.UUID]map[uuid.UUID]struct{}, len(courses))
	for _, e := range enrollments {
		set, ok := enrolled[e.CourseID]
		if !ok {
			set = map[uuid.UUID]struct{}{}
			enrolled[e.CourseID] = set
		}
		set[e.UserID] = struct{}{}
	}

	out := dto.CourseAnalyticsDTO{
		TotalCourses:        len(courses),
		TotalCompletions:    totalCompletions,
		CompletionRateBasis: string(CompletionRateDenominator),
		CourseStats:         make([]dto.CourseStat, 0, len(courses)),
	}

	rateSum := 0
	for _, c := range courses {
		total := lessonsPerCourse[c.ID]
		out.TotalLessons += total

		stat := dto.CourseStat{
			CourseID:         c.ID,
			CourseName:       c.Nome,
			TotalLessons:     total,
			StudentsEnrolled: len(enrolled[c.ID]),
		}
		if total == 0 {
			// zero-lesson placeholder: nothing can be started or finished
			out.CourseStats = append(out.CourseStats, stat)
			continue
		}

		stat.TotalCompletions = completionsPerCourse[c.ID]
		stat.StudentsStarted = len(perUser[c.ID])
		enrolledCompleted := 0
		for userID, set := range perUser[c.ID] {
			if len(set) != total {
				continue
			}
			stat.StudentsCompleted++
			if _, ok := enrolled[c.ID][userID]; ok {
				enrolledCompleted++
			}
		}
		stat.CompletionRate = completionRate(stat, enrolledCompleted, CompletionRateDenominator)
		stat.EnrolledCompletionRate = completionRate(stat, enrolledCompleted, DenominatorStudentsEnrolled)

		rateSum += stat.CompletionRate
		out.CourseStats = append(out.CourseStats, stat)
	}

	if len(courses) > 0 {
		out.AverageCompletionRate = int(math.Round(float64(rateSum) / float64(len(courses))))
	}
	return out
}

// completionRate only counts finishers inside the chosen population, so the
// enrolled view never exceeds 100.
func completionRate(s dto.CourseStat, enrolledCompleted int, d Denominator) int {
	num, base := s.StudentsCompleted, s.StudentsStarted
	if d == DenominatorStudentsEnrolled {
		num, base = enrolledCompleted, s.StudentsEnrolled
	}
	if base == 0 {
		return 0
	}
	return int(math.Round(float64(num) * 100 / float64(base)))
}
