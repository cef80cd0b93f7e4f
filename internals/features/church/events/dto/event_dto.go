package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/church/events/model"
	helper "churchhub_backend/internals/helpers"
	"churchhub_backend/internals/helpers/dbtime"
)

type CreateEventRequest struct {
	Titulo    string  `json:"titulo" validate:"required,min=2,max=200"`
	Descricao string  `json:"descricao" validate:"required"`
	Data      string  `json:"data" validate:"required,datetime=2006-01-02"`
	Local     string  `json:"local" validate:"required,max=255"`
	Imagem    *string `json:"imagem" validate:"omitempty,max=500"`
}

func (r *CreateEventRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.Descricao = strings.TrimSpace(r.Descricao)
	r.Data = strings.TrimSpace(r.Data)
	r.Local = strings.TrimSpace(r.Local)
	if r.Imagem != nil && strings.TrimSpace(*r.Imagem) == "" {
		r.Imagem = nil
	}
}

func (r *CreateEventRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreateEventRequest) ToModel() (*model.EventModel, error) {
	d, err := dbtime.ParseDate(r.Data)
	if err != nil {
		return nil, err
	}
	return &model.EventModel{
		Titulo:    r.Titulo,
		Descricao: r.Descricao,
		Data:      d,
		Local:     r.Local,
		Imagem:    r.Imagem,
	}, nil
}

type UpdateEventRequest struct {
	Titulo    *string `json:"titulo" validate:"omitempty,min=2,max=200"`
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
	Data      *string `json:"data" validate:"omitempty,datetime=2006-01-02"`
	Local     *string `json:"local" validate:"omitempty,max=255"`
	Imagem    *string `json:"imagem" validate:"omitempty,max=500"`
}

func (r *UpdateEventRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdateEventRequest) ApplyTo(m *model.EventModel) error {
	if r.Titulo != nil {
		m.Titulo = strings.TrimSpace(*r.Titulo)
	}
	if r.Descricao != nil {
		m.Descricao = strings.TrimSpace(*r.Descricao)
	}
	if r.Data != nil {
		d, err := dbtime.ParseDate(*r.Data)
		if err != nil {
			return err
		}
		m.Data = d
	}
	if r.Local != nil {
		m.Local = strings.TrimSpace(*r.Local)
	}
	if r.Imagem != nil {
		if v := strings.TrimSpace(*r.Imagem); v == "" {
			m.Imagem = nil
		} else {
			m.Imagem = &v
		}
	}
	return nil
}

type EventDTO struct {
	ID        uuid.UUID `json:"id"`
	Titulo    string    `json:"titulo"`
	Descricao string    `json:"descricao"`
	Data      string    `json:"data"`
	Local     string    `json:"local"`
	Imagem    *string   `json:"imagem"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		ID:        m.ID,
		Titulo:    m.Titulo,
		Descricao: m.Descricao,
		Data:      dbtime.FormatDate(m.Data),
		Local:     m.Local,
		Imagem:    m.Imagem,
		CreatedAt: m.CreatedAt,
	}
}

func ToEventDTOs(list []model.EventModel) []EventDTO {
	out := make([]EventDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToEventDTO(m))
	}
	return out
}
