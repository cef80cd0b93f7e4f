package dto

import "github.com/google/uuid"

type CourseProgressDTO struct {
	TotalLessons     int `json:"totalLessons"`
	CompletedLessons int `json:"completedLessons"`
	Progress         int `json:"progress"`
}

type UserProgressDTO struct {
	UserID           uuid.UUID `json:"userId"`
	UserName         string    `json:"userName"`
	Progress         int       `json:"progress"`
	CompletedLessons int       `json:"completedLessons"`
}
