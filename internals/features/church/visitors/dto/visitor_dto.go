package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/church/visitors/model"
	helper "churchhub_backend/internals/helpers"
)

type CreateVisitorRequest struct {
	Nome         string  `json:"nome" validate:"required,min=2,max=120"`
	Whatsapp     *string `json:"whatsapp" validate:"omitempty,max=30"`
	ComoConheceu *string `json:"comoConheceu" validate:"omitempty,max=255"`
	Culto        *string `json:"culto" validate:"omitempty,max=120"`
}

func (r *CreateVisitorRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Whatsapp = trimOrNil(r.Whatsapp)
	r.ComoConheceu = trimOrNil(r.ComoConheceu)
	r.Culto = trimOrNil(r.Culto)
}

func (r *CreateVisitorRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreateVisitorRequest) ToModel() *model.VisitorModel {
	return &model.VisitorModel{
		Nome:         r.Nome,
		Whatsapp:     r.Whatsapp,
		ComoConheceu: r.ComoConheceu,
		Culto:        r.Culto,
	}
}

// UpdateVisitorRequest is partial; membrouSe alone is the common "became a member" toggle.
type UpdateVisitorRequest struct {
	Nome         *string `json:"nome" validate:"omitempty,min=2,max=120"`
	Whatsapp     *string `json:"whatsapp" validate:"omitempty,max=30"`
	ComoConheceu *string `json:"comoConheceu" validate:"omitempty,max=255"`
	Culto        *string `json:"culto" validate:"omitempty,max=120"`
	MembrouSe    *bool   `json:"membrouSe"`
}

func (r *UpdateVisitorRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdateVisitorRequest) ApplyTo(m *model.VisitorModel) {
	if r.Nome != nil {
		m.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.Whatsapp != nil {
		m.Whatsapp = trimOrNil(r.Whatsapp)
	}
	if r.ComoConheceu != nil {
		m.ComoConheceu = trimOrNil(r.ComoConheceu)
	}
	if r.Culto != nil {
		m.Culto = trimOrNil(r.Culto)
	}
	if r.MembrouSe != nil {
		m.MembrouSe = *r.MembrouSe
	}
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

type VisitorDTO struct {
	ID           uuid.UUID `json:"id"`
	Nome         string    `json:"nome"`
	Whatsapp     *string   `json:"whatsapp"`
	ComoConheceu *string   `json:"comoConheceu"`
	Culto        *string   `json:"culto"`
	MembrouSe    bool      `json:"membrouSe"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ToVisitorDTO(m model.VisitorModel) VisitorDTO {
	return VisitorDTO{
		ID:           m.ID,
		Nome:         m.Nome,
		Whatsapp:     m.Whatsapp,
		ComoConheceu: m.ComoConheceu,
		Culto:        m.Culto,
		MembrouSe:    m.MembrouSe,
		CreatedAt:    m.CreatedAt,
	}
}

func ToVisitorDTOs(list []model.VisitorModel) []VisitorDTO {
	out := make([]VisitorDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToVisitorDTO(m))
	}
	return out
}
