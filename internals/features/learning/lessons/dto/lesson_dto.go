package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/learning/lessons/model"
	helper "churchhub_backend/internals/helpers"
)

type CreateLessonRequest struct {
	Titulo    string `json:"titulo" validate:"required,min=2,max=200"`
	Descricao string `json:"descricao" validate:"required"`
	VideoURL  string `json:"videoUrl" validate:"required,url"`
	Ordem     *int   `json:"ordem" validate:"omitempty,min=0"`
}

func (r *CreateLessonRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descricao = strings.TrimSpace(r.Descricao)
	r.VideoURL = strings.TrimSpace(r.VideoURL)
}

func (r *CreateLessonRequest) Validate() error {
	return helper.Validator().Struct(r)
}

// ToModel leaves Ordem at 0 when absent; the service appends it to the end.
func (r *CreateLessonRequest) ToModel(courseID uuid.UUID) *model.LessonModel {
	m := &model.LessonModel{
		CursoID:   courseID,
		Titulo:    r.Titulo,
		Descricao: r.Descricao,
		VideoURL:  r.VideoURL,
	}
	if r.Ordem != nil {
		m.Ordem = *r.Ordem
	}
	return m
}

type UpdateLessonRequest struct {
	Titulo    *string `json:"titulo" validate:"omitempty,min=2,max=200"`
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
	VideoURL  *string `json:"videoUrl" validate:"omitempty,url"`
	Ordem     *int    `json:"ordem" validate:"omitempty,min=0"`
}

func (r *UpdateLessonRequest) Normalize() {
	for _, f := range []**string{&r.Titulo, &r.Descricao, &r.VideoURL} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
}

func (r *UpdateLessonRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdateLessonRequest) ApplyTo(m *model.LessonModel) {
	if r.Titulo != nil {
		m.Titulo = *r.Titulo
	}
	if r.Descricao != nil {
		m.Descricao = *r.Descricao
	}
	if r.VideoURL != nil {
		m.VideoURL = *r.VideoURL
	}
	if r.Ordem != nil {
		m.Ordem = *r.Ordem
	}
}

type LessonDTO struct {
	ID        uuid.UUID `json:"id"`
	CursoID   uuid.UUID `json:"cursoId"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	VideoURL  string    `json:"videoUrl"`
	Ordem     int       `json:"ordem"`
	CreatedAt time.Time `json:"createdAt"`

	// set on member listings
	Completed *bool `json:"completed,omitempty"`
}

func ToLessonDTO(m model.LessonModel) LessonDTO {
	return LessonDTO{
		ID:        m.ID,
		CursoID:   m.CursoID,
		Titulo:    m.Titulo,
		Descricao: m.Descricao,
		VideoURL:  m.VideoURL,
		Ordem:     m.Ordem,
		CreatedAt: m.CreatedAt,
	}
}

// ToLessonDTOs marks each lesson completed/not when done is non-nil.
func ToLessonDTOs(list []model.LessonModel, done map[uuid.UUID]bool) []LessonDTO {
	out := make([]LessonDTO, 0, len(list))
	for _, m := range list {
		d := ToLessonDTO(m)
		if done != nil {
			v := done[m.ID]
			d.Completed = &v
		}
		out = append(out, d)
	}
	return out
}
