package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"churchhub_backend/internals/features/church/prayers/model"
	helper "churchhub_backend/internals/helpers"
)

const anonymousName = "Anônimo"

// CreatePrayerRequest is the public form. Submissions always start pending.
type CreatePrayerRequest struct {
	Nome     string `json:"nome" validate:"max=120"`
	Pedido   string `json:"pedido" validate:"required,min=5,max=2000"`
	IsPublic bool   `json:"isPublic"`
}

func (r *CreatePrayerRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Pedido = strings.TrimSpace(r.Pedido)
}

func (r *CreatePrayerRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreatePrayerRequest) ToModel() *model.PrayerRequestModel {
	nome := r.Nome
	if nome == "" {
		nome = anonymousName
	}
	return &model.PrayerRequestModel{
		Nome:     nome,
		Pedido:   r.Pedido,
		Status:   model.StatusPending,
		IsPublic: r.IsPublic,
	}
}

// UpdatePrayerStatusRequest: PATCH /api/admin/prayers/:id
type UpdatePrayerStatusRequest struct {
	Status   *string `json:"status" validate:"omitempty,oneof=pending approved archived"`
	IsPublic *bool   `json:"isPublic"`
}

func (r *UpdatePrayerStatusRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdatePrayerStatusRequest) Empty() bool {
	return r.Status == nil && r.IsPublic == nil
}

type PrayerDTO struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	Pedido    string    `json:"pedido"`
	Status    string    `json:"status"`
	IsPublic  bool      `json:"isPublic"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToPrayerDTO(m model.PrayerRequestModel) PrayerDTO {
	return PrayerDTO{
		ID:        m.ID,
		Nome:      m.Nome,
		Pedido:    m.Pedido,
		Status:    m.Status,
		IsPublic:  m.IsPublic,
		CreatedAt: m.CreatedAt,
	}
}

func ToPrayerDTOs(list []model.PrayerRequestModel) []PrayerDTO {
	out := make([]PrayerDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToPrayerDTO(m))
	}
	return out
}
