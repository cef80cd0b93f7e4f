package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"churchhub_backend/internals/features/learning/quizzes/model"
)

func quiz(correct ...string) []model.QuestionModel {
	out := make([]model.QuestionModel, 0, len(correct))
	for i, c := range correct {
		out = append(out, model.QuestionModel{Pergunta: "q", RespostaCorreta: c, Ordem: i + 1})
	}
	return out
}

func TestGradeAnswers(t *testing.T) {
	tests := []struct {
		name          string
		questions     []model.QuestionModel
		answers       []string
		wantScore     int
		wantCompleted bool
		wantErr       error
	}{
		{
			name:          "all correct completes the lesson",
			questions:     quiz("A", "B", "C"),
			answers:       []string{"A", "B", "C"},
			wantScore:     3,
			wantCompleted: true,
		},
		{
			name:      "two of three does not complete",
			questions: quiz("A", "B", "C"),
			answers:   []string{"A", "B", "A"},
			wantScore: 2,
		},
		{
			name:      "answers are compared by position",
			questions: quiz("A", "B", "C"),
			answers:   []string{"C", "A", "B"},
			wantScore: 0,
		},
		{
			name:          "stored answer is trimmed and upper cased",
			questions:     quiz(" a", "b ", "C"),
			answers:       []string{"A", "B", "C"},
			wantScore:     3,
			wantCompleted: true,
		},
		{
			name:      "two answers are invalid input",
			questions: quiz("A", "B", "C"),
			answers:   []string{"A", "B"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "lowercase answer is invalid input",
			questions: quiz("A", "B", "C"),
			answers:   []string{"a", "B", "C"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "unknown option is rejected rather than scored as wrong",
			questions: quiz("A", "B", "C"),
			answers:   []string{"A", "X", "C"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "option D is invalid input",
			questions: quiz("A", "B", "C"),
			answers:   []string{"A", "B", "D"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "two questions is not configured",
			questions: quiz("A", "B"),
			answers:   []string{"A", "B", "C"},
			wantErr:   ErrQuizNotConfigured,
		},
		{
			name:      "no questions is not configured",
			questions: nil,
			answers:   []string{"A", "B", "C"},
			wantErr:   ErrQuizNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := GradeAnswers(tt.questions, tt.answers)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScore, g.Score)
			assert.Equal(t, tt.wantCompleted, g.Completed)
		})
	}
}

func TestGradeMessage(t *testing.T) {
	assert.Equal(t,
		"Congratulations! You answered 3 of 3 questions correctly.",
		GradeMessage(Grade{Score: 3, Completed: true}))
	assert.Equal(t,
		"You answered 1 of 3 questions correctly. Try again.",
		GradeMessage(Grade{Score: 1}))
}

func TestParseCompletedAtPolicy(t *testing.T) {
	for in, want := range map[string]CompletedAtPolicy{
		"":                  CompletedAtLatestCompletion,
		"latest-completion": CompletedAtLatestCompletion,
		"Latest-Submission": CompletedAtLatestSubmission,
		" first-completion": CompletedAtFirstCompletion,
	} {
		got, err := ParseCompletedAtPolicy(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	got, err := ParseCompletedAtPolicy("whenever")
	assert.Error(t, err)
	assert.Equal(t, DefaultCompletedAtPolicy, got)
}

func TestResolveCompletedAt(t *testing.T) {
	earlier := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		policy    CompletedAtPolicy
		previous  *time.Time
		completed bool
		want      *time.Time
	}{
		{"latest completion restamps a pass", CompletedAtLatestCompletion, &earlier, true, &now},
		{"latest completion keeps through a fail", CompletedAtLatestCompletion, &earlier, false, &earlier},
		{"latest completion stays null on first fail", CompletedAtLatestCompletion, nil, false, nil},
		{"latest submission clears on fail", CompletedAtLatestSubmission, &earlier, false, nil},
		{"latest submission stamps a pass", CompletedAtLatestSubmission, nil, true, &now},
		{"first completion never overwrites", CompletedAtFirstCompletion, &earlier, true, &earlier},
		{"first completion stamps the first pass", CompletedAtFirstCompletion, nil, true, &now},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCompletedAt(tt.policy, tt.previous, tt.completed, now)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.True(t, tt.want.Equal(*got), "want %v got %v", tt.want, got)
			}
		})
	}
}
