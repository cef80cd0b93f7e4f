package dto

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"churchhub_backend/internals/features/church/materials/model"
	helper "churchhub_backend/internals/helpers"
)

type CreateMaterialRequest struct {
	Titulo     string   `json:"titulo" validate:"required,min=2,max=200"`
	Descricao  *string  `json:"descricao"`
	ArquivoURL string   `json:"arquivoUrl" validate:"required,max=1000"`
	Tipo       string   `json:"tipo" validate:"omitempty,oneof=pdf video"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,max=40"`
}

func (r *CreateMaterialRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	r.ArquivoURL = strings.TrimSpace(r.ArquivoURL)
	r.Tipo = strings.ToLower(strings.TrimSpace(r.Tipo))
	if r.Tipo == "" {
		r.Tipo = model.TipoPDF
	}
	if r.Descricao != nil && strings.TrimSpace(*r.Descricao) == "" {
		r.Descricao = nil
	}
	r.Tags = NormalizeTags(r.Tags)
}

func (r *CreateMaterialRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *CreateMaterialRequest) ToModel() *model.MaterialModel {
	return &model.MaterialModel{
		Titulo:     r.Titulo,
		Descricao:  r.Descricao,
		ArquivoURL: r.ArquivoURL,
		Tipo:       r.Tipo,
		Tags:       pq.StringArray(r.Tags),
	}
}

type UpdateMaterialRequest struct {
	Titulo     *string   `json:"titulo" validate:"omitempty,min=2,max=200"`
	Descricao  *string   `json:"descricao"`
	ArquivoURL *string   `json:"arquivoUrl" validate:"omitempty,min=1,max=1000"`
	Tipo       *string   `json:"tipo" validate:"omitempty,oneof=pdf video"`
	Tags       *[]string `json:"tags" validate:"omitempty,max=20,dive,max=40"`
}

func (r *UpdateMaterialRequest) Validate() error {
	if r.Tipo != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Tipo))
		r.Tipo = &v
	}
	return helper.Validator().Struct(r)
}

func (r *UpdateMaterialRequest) ApplyTo(m *model.MaterialModel) {
	if r.Titulo != nil {
		m.Titulo = strings.TrimSpace(*r.Titulo)
	}
	if r.Descricao != nil {
		if v := strings.TrimSpace(*r.Descricao); v == "" {
			m.Descricao = nil
		} else {
			m.Descricao = &v
		}
	}
	if r.ArquivoURL != nil {
		m.ArquivoURL = strings.TrimSpace(*r.ArquivoURL)
	}
	if r.Tipo != nil {
		m.Tipo = *r.Tipo
	}
	if r.Tags != nil {
		m.Tags = pq.StringArray(NormalizeTags(*r.Tags))
	}
}

// NormalizeTags lowercases, trims, drops empties and duplicates, sorts.
func NormalizeTags(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

type MaterialDTO struct {
	ID         uuid.UUID `json:"id"`
	Titulo     string    `json:"titulo"`
	Descricao  *string   `json:"descricao"`
	ArquivoURL string    `json:"arquivoUrl"`
	Tipo       string    `json:"tipo"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToMaterialDTO(m model.MaterialModel) MaterialDTO {
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return MaterialDTO{
		ID:         m.ID,
		Titulo:     m.Titulo,
		Descricao:  m.Descricao,
		ArquivoURL: m.ArquivoURL,
		Tipo:       m.Tipo,
		Tags:       tags,
		CreatedAt:  m.CreatedAt,
	}
}

func ToMaterialDTOs(list []model.MaterialModel) []MaterialDTO {
	out := make([]MaterialDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToMaterialDTO(m))
	}
	return out
}
