package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
)

// QuestionsPerQuiz is the only question count a gradable quiz may have.
const QuestionsPerQuiz = 3

const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
)

func IsValidOption(s string) bool {
	return s == OptionA || s == OptionB || s == OptionC
}

type QuestionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID        uuid.UUID `gorm:"column:lesson_id;type:uuid;not null;index" json:"lessonId"`
	Pergunta        string    `gorm:"column:pergunta;type:text;not null" json:"pergunta"`
	OpcaoA          string    `gorm:"column:opcao_a;type:text;not null" json:"opcaoA"`
	OpcaoB          string    `gorm:"column:opcao_b;type:text;not null" json:"opcaoB"`
	OpcaoC          string    `gorm:"column:opcao_c;type:text;not null" json:"opcaoC"`
	RespostaCorreta string    `gorm:"column:resposta_correta;type:varchar(1);not null" json:"respostaCorreta"`
	Ordem           int       `gorm:"column:ordem;not null" json:"ordem"`

	Lesson *lessonModel.LessonModel `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (m *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
