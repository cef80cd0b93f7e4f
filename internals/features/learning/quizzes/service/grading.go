package service

import (
	"errors"
	"fmt"
	"strings"

	"churchhub_backend/internals/features/learning/quizzes/model"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrQuizNotConfigured = errors.New("quiz not configured")
	ErrLessonNotFound    = errors.New("lesson not found")
)

type Grade struct {
	Score     int
	Completed bool
}

// ValidateAnswers: exactly three answers, each A, B or C.
func ValidateAnswers(answers []string) error {
	if len(answers) != model.QuestionsPerQuiz {
		return fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidInput, model.QuestionsPerQuiz, len(answers))
	}
	for i, a := range answers {
		if !model.IsValidOption(a) {
			return fmt.Errorf("%w: answer %d must be A, B or C", ErrInvalidInput, i+1)
		}
	}
	return nil
}

// GradeAnswers compares answers positionally against questions, which must
// already be sorted by ordem. Any count other than three is "not configured".
func GradeAnswers(questions []model.QuestionModel, answers []string) (Grade, error) {
	if err := ValidateAnswers(answers); err != nil {
		return Grade{}, err
	}
	if len(questions) != model.QuestionsPerQuiz {
		return Grade{}, ErrQuizNotConfigured
	}

	score := 0
	for i, q := range questions {
		if answers[i] == strings.ToUpper(strings.TrimSpace(q.RespostaCorreta)) {
			score++
		}
	}
	return Grade{
		Score:     score,
		Completed: score == model.QuestionsPerQuiz,
	}, nil
}

func GradeMessage(g Grade) string {
	if g.Completed {
		return fmt.Sprintf("Congratulations! You answered %d of %d questions correctly.", g.Score, model.QuestionsPerQuiz)
	}
	return fmt.Sprintf("You answered %d of %d questions correctly. Try again.", g.Score, model.QuestionsPerQuiz)
}
