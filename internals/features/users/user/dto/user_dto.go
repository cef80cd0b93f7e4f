package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	uModel "churchhub_backend/internals/features/users/user/model"
	helper "churchhub_backend/internals/helpers"
	"churchhub_backend/internals/helpers/dbtime"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// ProfileFields are the member-editable parts of a user.
type ProfileFields struct {
	DataNascimento *string `json:"dataNascimento" validate:"omitempty,datetime=2006-01-02"`
	Profissao      *string `json:"profissao" validate:"omitempty,max=120"`
	Endereco       *string `json:"endereco" validate:"omitempty,max=255"`
	Bairro         *string `json:"bairro" validate:"omitempty,max=120"`
	Cidade         *string `json:"cidade" validate:"omitempty,max=120"`
	Whatsapp       *string `json:"whatsapp" validate:"omitempty,max=30"`
}

func (p *ProfileFields) normalize() {
	for _, f := range []**string{&p.DataNascimento, &p.Profissao, &p.Endereco, &p.Bairro, &p.Cidade, &p.Whatsapp} {
		*f = trimOrNil(*f)
	}
}

// apply copies the non-empty fields onto m.
func (p *ProfileFields) apply(m *uModel.UserModel) error {
	if p.DataNascimento != nil {
		d, err := dbtime.ParseDatePtr(p.DataNascimento)
		if err != nil {
			return err
		}
		m.DataNascimento = d
	}
	if p.Profissao != nil {
		m.Profissao = p.Profissao
	}
	if p.Endereco != nil {
		m.Endereco = p.Endereco
	}
	if p.Bairro != nil {
		m.Bairro = p.Bairro
	}
	if p.Cidade != nil {
		m.Cidade = p.Cidade
	}
	if p.Whatsapp != nil {
		m.Whatsapp = p.Whatsapp
	}
	return nil
}

// CreateUserRequest: register or create by admin
type CreateUserRequest struct {
	Nome  string `json:"nome" validate:"required,min=2,max=120"`
	Email string `json:"email" validate:"required,email,max=255"`
	Senha string `json:"senha" validate:"required,min=6,max=72"`
	ProfileFields

	// admin only; ignored on self registration
	MinisterioLouvor  bool `json:"ministerioLouvor"`
	MinisterioObreiro bool `json:"ministerioObreiro"`
	IsAdmin           bool `json:"isAdmin"`
	IsLider           bool `json:"isLider"`
}

func (r *CreateUserRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.ProfileFields.normalize()
}

func (r *CreateUserRequest) Validate() error {
	return helper.Validator().Struct(r)
}

// ToModel: the caller hashes Senha before saving.
func (r *CreateUserRequest) ToModel(withFlags bool) (*uModel.UserModel, error) {
	m := &uModel.UserModel{
		Nome:     r.Nome,
		Email:    r.Email,
		Senha:    r.Senha,
		IsActive: true,
	}
	if err := r.ProfileFields.apply(m); err != nil {
		return nil, err
	}
	if withFlags {
		m.MinisterioLouvor = r.MinisterioLouvor
		m.MinisterioObreiro = r.MinisterioObreiro
		m.IsAdmin = r.IsAdmin
		m.IsLider = r.IsLider
	}
	return m, nil
}

// UpdateProfileRequest: PUT /api/profile (self)
type UpdateProfileRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2,max=120"`
	ProfileFields
}

func (r *UpdateProfileRequest) Normalize() {
	if r.Nome != nil {
		v := strings.TrimSpace(*r.Nome)
		r.Nome = &v
	}
	r.ProfileFields.normalize()
}

func (r *UpdateProfileRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r *UpdateProfileRequest) ApplyTo(m *uModel.UserModel) error {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	return r.ProfileFields.apply(m)
}

// UpdateUserRequest: PUT /api/admin/members/:id (partial)
type UpdateUserRequest struct {
	Nome              *string `json:"nome" validate:"omitempty,min=2,max=120"`
	Email             *string `json:"email" validate:"omitempty,email,max=255"`
	Senha             *string `json:"senha" validate:"omitempty,min=6,max=72"`
	MinisterioLouvor  *bool   `json:"ministerioLouvor"`
	MinisterioObreiro *bool   `json:"ministerioObreiro"`
	IsAdmin           *bool   `json:"isAdmin"`
	IsLider           *bool   `json:"isLider"`
	IsActive          *bool   `json:"isActive"`
	ProfileFields
}

func (r *UpdateUserRequest) Normalize() {
	if r.Nome != nil {
		v := strings.TrimSpace(*r.Nome)
		r.Nome = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
	r.ProfileFields.normalize()
}

func (r *UpdateUserRequest) Validate() error {
	return helper.Validator().Struct(r)
}

// ApplyTo copies everything except Senha, which the controller hashes.
func (r *UpdateUserRequest) ApplyTo(m *uModel.UserModel) error {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.MinisterioLouvor != nil {
		m.MinisterioLouvor = *r.MinisterioLouvor
	}
	if r.MinisterioObreiro != nil {
		m.MinisterioObreiro = *r.MinisterioObreiro
	}
	if r.IsAdmin != nil {
		m.IsAdmin = *r.IsAdmin
	}
	if r.IsLider != nil {
		m.IsLider = *r.IsLider
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return r.ProfileFields.apply(m)
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

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserDTO struct {
	ID                uuid.UUID `json:"id"`
	Nome              string    `json:"nome"`
	Email             string    `json:"email"`
	DataNascimento    *string   `json:"dataNascimento"`
	Profissao         *string   `json:"profissao"`
	Endereco          *string   `json:"endereco"`
	Bairro            *string   `json:"bairro"`
	Cidade            *string   `json:"cidade"`
	Whatsapp          *string   `json:"whatsapp"`
	MinisterioLouvor  bool      `json:"ministerioLouvor"`
	MinisterioObreiro bool      `json:"ministerioObreiro"`
	IsAdmin           bool      `json:"isAdmin"`
	IsLider           bool      `json:"isLider"`
	IsActive          bool      `json:"isActive"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"createdAt"`
}

func ToUserDTO(m uModel.UserModel) UserDTO {
	return UserDTO{
		ID:                m.ID,
		Nome:              m.Nome,
		Email:             m.Email,
		DataNascimento:    dbtime.FormatDatePtr(m.DataNascimento),
		Profissao:         m.Profissao,
		Endereco:          m.Endereco,
		Bairro:            m.Bairro,
		Cidade:            m.Cidade,
		Whatsapp:          m.Whatsapp,
		MinisterioLouvor:  m.MinisterioLouvor,
		MinisterioObreiro: m.MinisterioObreiro,
		IsAdmin:           m.IsAdmin,
		IsLider:           m.IsLider,
		IsActive:          m.IsActive,
		Role:              m.Role(),
		CreatedAt:         m.CreatedAt,
	}
}

func ToUserDTOs(list []uModel.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for _, m := range list {
		out = append(out, ToUserDTO(m))
	}
	return out
}

type BirthdayDTO struct {
	ID             uuid.UUID `json:"id"`
	Nome           string    `json:"nome"`
	DataNascimento string    `json:"dataNascimento"`
	Dia            int       `json:"dia"`
}

type AgeGroupCount struct {
	AgeGroup string `json:"ageGroup"`
	Count    int    `json:"count"`
}

type NeighborhoodCount struct {
	Neighborhood string `json:"neighborhood"`
	Count        int    `json:"count"`
}

type ProfessionCount struct {
	Profession string `json:"profession"`
	Count      int    `json:"count"`
}

type MemberAnalyticsDTO struct {
	TotalMembers          int                 `json:"totalMembers"`
	MembersByAge          []AgeGroupCount     `json:"membersByAge"`
	MembersByNeighborhood []NeighborhoodCount `json:"membersByNeighborhood"`
	MembersByProfession   []ProfessionCount   `json:"membersByProfession"`
	RecentMembersCount    int                 `json:"recentMembersCount"`
}
