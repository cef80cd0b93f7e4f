package courses

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	courseModel "churchhub_backend/internals/features/learning/courses/model"
	courseService "churchhub_backend/internals/features/learning/courses/service"
	lessonModel "churchhub_backend/internals/features/learning/lessons/model"
	quizModel "churchhub_backend/internals/features/learning/quizzes/model"
)

type QuestionSeed struct {
	Pergunta        string `json:"pergunta"`
	OpcaoA          string `json:"opcaoA"`
	OpcaoB          string `json:"opcaoB"`
	OpcaoC          string `json:"opcaoC"`
	RespostaCorreta string `json:"respostaCorreta"`
}

type LessonSeed struct {
	Titulo    string         `json:"titulo"`
	Descricao string         `json:"descricao"`
	VideoURL  string         `json:"videoUrl"`
	Questions []QuestionSeed `json:"questions"`
}

type CourseSeed struct {
	Nome      string       `json:"nome"`
	Descricao string       `json:"descricao"`
	Imagem    *string      `json:"imagem"`
	Lessons   []LessonSeed `json:"lessons"`
}

// SeedCoursesFromJSON inserts courses whose name is not taken yet, with their
// lessons and quiz questions, one transaction per course.
func SeedCoursesFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Reading file:", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []CourseSeed
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, s := range seeds {
		var n int64
		if err := db.Model(&courseModel.CourseModel{}).Where("nome = ?", s.Nome).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			log.Printf("ℹ️ Course '%s' already exists, skipped.", s.Nome)
			continue
		}
		if err := db.Transaction(func(tx *gorm.DB) error { return insertCourse(tx, s) }); err != nil {
			return fmt.Errorf("seed course %q: %w", s.Nome, err)
		}
		log.Printf("✅ Course '%s' seeded with %d lessons", s.Nome, len(s.Lessons))
	}
	return nil
}

func insertCourse(tx *gorm.DB, s CourseSeed) error {
	c := courseModel.CourseModel{Nome: s.Nome, Descricao: s.Descricao, Imagem: s.Imagem}
	if err := courseService.AssignSlug(tx.Statement.Context, tx, &c); err != nil {
		return err
	}
	if err := tx.Create(&c).Error; err != nil {
		return err
	}
	for i, ls := range s.Lessons {
		l := lessonModel.LessonModel{
			CursoID:   c.ID,
			Titulo:    ls.Titulo,
			Descricao: ls.Descricao,
			VideoURL:  ls.VideoURL,
			Ordem:     i + 1,
		}
		if err := tx.Create(&l).Error; err != nil {
			return err
		}
		if len(ls.Questions) != quizModel.QuestionsPerQuiz {
			continue
		}
		qs := make([]quizModel.QuestionModel, 0, len(ls.Questions))
		for j, q := range ls.Questions {
			qs = append(qs, quizModel.QuestionModel{
				LessonID:        l.ID,
				Pergunta:        q.Pergunta,
				OpcaoA:          q.OpcaoA,
				OpcaoB:          q.OpcaoB,
				OpcaoC:          q.OpcaoC,
				RespostaCorreta: q.RespostaCorreta,
				Ordem:           j + 1,
			})
		}
		if err := tx.Create(&qs).Error; err != nil {
			return err
		}
	}
	return nil
}
