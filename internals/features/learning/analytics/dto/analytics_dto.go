package dto

import "github.com/google/uuid"

type CourseStat struct {
	CourseID               uuid.UUID `json:"courseId"`
	CourseName             string    `json:"courseName"`
	TotalLessons           int       `json:"totalLessons"`
	TotalCompletions       int       `json:"totalCompletions"`
	StudentsStarted        int       `json:"studentsStarted"`
	StudentsCompleted      int       `json:"studentsCompleted"`
	StudentsEnrolled       int       `json:"studentsEnrolled"`
	CompletionRate         int       `json:"completionRate"`
	EnrolledCompletionRate int       `json:"enrolledCompletionRate"`
}

type CourseAnalyticsDTO struct {
	TotalCourses          int          `json:"totalCourses"`
	TotalLessons          int          `json:"totalLessons"`
	TotalCompletions      int          `json:"totalCompletions"`
	AverageCompletionRate int          `json:"averageCompletionRate"`
	CompletionRateBasis   string       `json:"completionRateBasis"`
	CourseStats           []CourseStat `json:"courseStats"`
}
