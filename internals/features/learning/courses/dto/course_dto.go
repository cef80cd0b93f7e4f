package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/learning/courses/model"
	helper "churchhub_backend/internals/helpers"
)

type CreateCourseRequest struct {
	Nome      string  `json:"nome" validate:"required,min=2,max=200"`
	Descricao string  `json:"descricao" validate:"required"`
	Imagem    *string `json:"imagem" validate:"omitempty,max=500"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Descricao = strings.TrimSpace(r.Descricao)
	if r.Imagem != nil {
		v := strings.TrimSpace(*r.Imagem)
		if v == "" {
			r.Imagem = nil
		} else {
			r.Imagem = &v
		}
	}
}

func (r *CreateCourseRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	return &model.CourseModel{Nome: r.Nome, Descricao: r.Descricao, Imagem: r.Imagem}
}

// UpdateCourseRequest is partial; an empty imagem clears it.
type UpdateCourseRequest struct {
	Nome      *string `json:"nome" validate:"omitempty,min=2,max=200"`
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
	Imagem    *string `json:"imagem" validate:"omitempty,max=500"`
}

func (r *UpdateCourseRequest) Normalize() {
	for _, f := range []**string{&r.Nome, &r.Descricao, &r.Imagem} {
		if *f != nil {
			v := strings.TrimSpace(**f)
			*f = &v
		}
	}
}

func (r *UpdateCourseRequest) Validate() error {
	return helper.Validator().Struct(r)
}

// ApplyTo reports whether the name changed so the caller can re-slug.
func (r *UpdateCourseRequest) ApplyTo(m *model.CourseModel) (nameChanged bool) {
	if r.Nome != nil && *r.Nome != m.Nome {
		m.Nome = *r.Nome
		nameChanged = true
	}
	if r.Descricao != nil {
		m.Descricao = *r.Descricao
	}
	if r.Imagem != nil {
		if *r.Imagem == "" {
			m.Imagem = nil
		} else {
			v := *r.Imagem
			m.Imagem = &v
		}
	}
	return nameChanged
}

type EnrollRequest struct {
	UserIDs []uuid.UUID `json:"userIds" validate:"required,min=1,dive,required"`
}

func (r *EnrollRequest) Validate() error {
	return helper.Validator().Struct(r)
}

type CourseDTO struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Descricao    string    `json:"descricao"`
	Imagem       *string   `json:"imagem"`
	Slug         string    `json:"slug"`
	TotalLessons *int64    `json:"totalLessons,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		ID:        m.ID,
		Nome:      m.Nome,
		Descricao: m.Descricao,
		Imagem:    m.Imagem,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
	}
}

// ToCourseDTOs attaches lesson counts when counts is non-nil.
func ToCourseDTOs(list []model.CourseModel, counts map[uuid.UUID]int64) []CourseDTO {
	out := make([]CourseDTO, 0, len(list))
	for _, m := range list {
		d := ToCourseDTO(m)
		if counts != nil {
			n := counts[m.ID]
			d.TotalLessons = &n
		}
		out = append(out, d)
	}
	return out
}

type EnrollmentDTO struct {
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	EnrolledAt time.Time `json:"enrolledAt"`
}
