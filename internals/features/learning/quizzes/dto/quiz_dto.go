package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/learning/quizzes/model"
	helper "churchhub_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// SubmitAnswersRequest: POST /api/lessons/:id/complete
type SubmitAnswersRequest struct {
	Respostas []string `json:"respostas" validate:"required,len=3,dive,oneof=A B C"`
}

func (r *SubmitAnswersRequest) Normalize() {
	for i := range r.Respostas {
		r.Respostas[i] = strings.TrimSpace(r.Respostas[i])
	}
}

func (r *SubmitAnswersRequest) Validate() error {
	return helper.Validator().Struct(r)
}

type QuestionInput struct {
	Pergunta        string `json:"pergunta" validate:"required,min=1"`
	OpcaoA          string `json:"opcaoA" validate:"required"`
	OpcaoB          string `json:"opcaoB" validate:"required"`
	OpcaoC          string `json:"opcaoC" validate:"required"`
	RespostaCorreta string `json:"respostaCorreta" validate:"required,oneof=A B C"`
	Ordem           int    `json:"ordem" validate:"required,min=1,max=3"`
}

// ReplaceQuestionsRequest: POST /api/admin/lessons/:id/questions
type ReplaceQuestionsRequest struct {
	Questions []QuestionInput `json:"questions" validate:"required,len=3,dive"`
}

func (r *ReplaceQuestionsRequest) Normalize() {
	for i := range r.Questions {
		q := &r.Questions[i]
		q.Pergunta = strings.TrimSpace(q.Pergunta)
		q.OpcaoA = strings.TrimSpace(q.OpcaoA)
		q.OpcaoB = strings.TrimSpace(q.OpcaoB)
		q.OpcaoC = strings.TrimSpace(q.OpcaoC)
		q.RespostaCorreta = strings.ToUpper(strings.TrimSpace(q.RespostaCorreta))
	}
}

// Validate runs the tag rules, then checks that ordem values are 1, 2 and 3
// with no repeats.
func (r *ReplaceQuestionsRequest) Validate() error {
	if err := helper.Validator().Struct(r); err != nil {
		return err
	}
	seen := map[int]bool{}
	for _, q := range r.Questions {
		if seen[q.Ordem] {
			return helper.NewFieldError("questions", fmt.Sprintf("duplicate ordem %d", q.Ordem))
		}
		seen[q.Ordem] = true
	}
	return nil
}

func (r *ReplaceQuestionsRequest) ToModels() []model.QuestionModel {
	out := make([]model.QuestionModel, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, model.QuestionModel{
			Pergunta:        q.Pergunta,
			OpcaoA:          q.OpcaoA,
			OpcaoB:          q.OpcaoB,
			OpcaoC:          q.OpcaoC,
			RespostaCorreta: q.RespostaCorreta,
			Ordem:           q.Ordem,
		})
	}
	return out
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type QuizResultDTO struct {
	Score          int        `json:"score"`
	Completed      bool       `json:"completed"`
	TotalQuestions int        `json:"totalQuestions"`
	Message        string     `json:"message"`
	Tentativas     int        `json:"tentativas"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type CompletionStatusDTO struct {
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`
	Tentativas  int        `json:"tentativas"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func ToCompletionStatusDTO(m model.LessonCompletionModel) CompletionStatusDTO {
	return CompletionStatusDTO{
		Completed:   m.Completed,
		Score:       m.Score,
		Tentativas:  m.Tentativas,
		CompletedAt: m.CompletedAt,
	}
}

// QuestionDTO includes the correct answer; admin only.
type QuestionDTO struct {
	ID              uuid.UUID `json:"id"`
	LessonID        uuid.UUID `json:"lessonId"`
	Pergunta        string    `json:"pergunta"`
	OpcaoA          string    `json:"opcaoA"`
	OpcaoB          string    `json:"opcaoB"`
	OpcaoC          string    `json:"opcaoC"`
	RespostaCorreta string    `json:"respostaCorreta"`
	Ordem           int       `json:"ordem"`
}

// PublicQuestionDTO is what members see while answering.
type PublicQuestionDTO struct {
	ID       uuid.UUID `json:"id"`
	Pergunta string    `json:"pergunta"`
	OpcaoA   string    `json:"opcaoA"`
	OpcaoB   string    `json:"opcaoB"`
	OpcaoC   string    `json:"opcaoC"`
	Ordem    int       `json:"ordem"`
}

func ToQuestionDTOs(list []model.QuestionModel) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(list))
	for _, q := range list {
		out = append(out, QuestionDTO{
			ID:              q.ID,
			LessonID:        q.LessonID,
			Pergunta:        q.Pergunta,
			OpcaoA:          q.OpcaoA,
			OpcaoB:          q.OpcaoB,
			OpcaoC:          q.OpcaoC,
			RespostaCorreta: q.RespostaCorreta,
			Ordem:           q.Ordem,
		})
	}
	return out
}

func ToPublicQuestionDTOs(list []model.QuestionModel) []PublicQuestionDTO {
	out := make([]PublicQuestionDTO, 0, len(list))
	for _, q := range list {
		out = append(out, PublicQuestionDTO{
			ID:       q.ID,
			Pergunta: q.Pergunta,
			OpcaoA:   q.OpcaoA,
			OpcaoB:   q.OpcaoB,
			OpcaoC:   q.OpcaoC,
			Ordem:    q.Ordem,
		})
	}
	return out
}
