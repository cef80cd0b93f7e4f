package dto

import (
	"strings"
	"time"

	userDto "churchhub_backend/internals/features/users/user/dto"
	helper "churchhub_backend/internals/helpers"
)

// RegisterRequest is a self sign-up; ministry and role flags are ignored.
type RegisterRequest = userDto.CreateUserRequest

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	return helper.Validator().Struct(r)
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

func (r *GoogleLoginRequest) Validate() error {
	r.IDToken = strings.TrimSpace(r.IDToken)
	return helper.Validator().Struct(r)
}

type ChangePasswordRequest struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=6,max=72,nefield=SenhaAtual"`
}

func (r *ChangePasswordRequest) Validate() error {
	return helper.Validator().Struct(r)
}

type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      userDto.UserDTO `json:"user"`
}
