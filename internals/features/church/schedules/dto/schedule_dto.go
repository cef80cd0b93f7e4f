package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/church/schedules/model"
	helper "churchhub_backend/internals/helpers"
	"churchhub_backend/internals/helpers/dbtime"
)

// CreateScheduleRequest: mes and ano are derived from data.
type CreateScheduleRequest struct {
	Tipo        string  `json:"tipo" validate:"required,oneof=louvor obreiros"`
	Data        string  `json:"data" validate:"required,datetime=2006-01-02"`
	Observacoes *string `json:"observacoes" validate:"omitempty,max=1000"`
}

func (r *CreateScheduleRequest) Normalize() {
	r.Tipo = strings.ToLower(strings.TrimSpace(r.Tipo))
	r.Data = strings.TrimSpace(r.Data)
	if r.Observacoes != nil && strings.TrimSpace(*r.Observacoes) == "" {
		r.Observacoes = nil
	}
}

func (r *CreateScheduleRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreateScheduleRequest) ToModel() (*model.ScheduleModel, error) {
	d, err := dbtime.ParseDate(r.Data)
	if err != nil {
		return nil, err
	}
	t := time.Time(d)
	return &model.ScheduleModel{
		Mes:         int(t.Month()),
		Ano:         t.Year(),
		Tipo:        r.Tipo,
		Data:        d,
		Observacoes: r.Observacoes,
	}, nil
}

// UpdateScheduleRequest: tipo is fixed once assignments may exist.
type UpdateScheduleRequest struct {
	Data        *string `json:"data" validate:"omitempty,datetime=2006-01-02"`
	Observacoes *string `json:"observacoes" validate:"omitempty,max=1000"`
}

func (r *UpdateScheduleRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdateScheduleRequest) ApplyTo(m *model.ScheduleModel) error {
	if r.Data != nil {
		d, err := dbtime.ParseDate(*r.Data)
		if err != nil {
			return err
		}
		t := time.Time(d)
		m.Data, m.Mes, m.Ano = d, int(t.Month()), t.Year()
	}
	if r.Observacoes != nil {
		if v := strings.TrimSpace(*r.Observacoes); v == "" {
			m.Observacoes = nil
		} else {
			m.Observacoes = &v
		}
	}
	return nil
}

type CreateAssignmentRequest struct {
	ScheduleID uuid.UUID `json:"scheduleId" validate:"required"`
	UserID     uuid.UUID `json:"userId" validate:"required"`
	Posicao    string    `json:"posicao" validate:"required,max=20"`
}

func (r *CreateAssignmentRequest) Validate() error {
	r.Posicao = strings.ToLower(strings.TrimSpace(r.Posicao))
	return helper.Validator().Struct(r)
}

type UpdateAssignmentRequest struct {
	UserID  *uuid.UUID `json:"userId"`
	Posicao *string    `json:"posicao" validate:"omitempty,max=20"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	if r.Posicao != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Posicao))
		r.Posicao = &v
	}
	return helper.Validator().Struct(r)
}

type AssignmentDTO struct {
	ID         uuid.UUID `json:"id"`
	ScheduleID uuid.UUID `json:"scheduleId"`
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	Posicao    string    `json:"posicao"`
}

type ScheduleDTO struct {
	ID          uuid.UUID       `json:"id"`
	Mes         int             `json:"mes"`
	Ano         int             `json:"ano"`
	Tipo        string          `json:"tipo"`
	Data        string          `json:"data"`
	Observacoes *string         `json:"observacoes"`
	CreatedAt   time.Time       `json:"createdAt"`
	Assignments []AssignmentDTO `json:"assignments"`
}

func ToScheduleDTO(m model.ScheduleModel, assignments []AssignmentDTO) ScheduleDTO {
	if assignments == nil {
		assignments = []AssignmentDTO{}
	}
	return ScheduleDTO{
		ID:          m.ID,
		Mes:         m.Mes,
		Ano:         m.Ano,
		Tipo:        m.Tipo,
		Data:        dbtime.FormatDate(m.Data),
		Observacoes: m.Observacoes,
		CreatedAt:   m.CreatedAt,
		Assignments: assignments,
	}
}
