package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest(t *testing.T) {
	bairro := "  "
	nasc := "1990-02-10"
	req := CreateUserRequest{
		Nome:  "  Maria Souza ",
		Email: " Maria@Igreja.TEST ",
		Senha: "segredo1",
		ProfileFields: ProfileFields{
			DataNascimento: &nasc,
			Bairro:         &bairro,
		},
		IsAdmin: true,
	}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, "Maria Souza", req.Nome)
	assert.Equal(t, "maria@igreja.test", req.Email)
	assert.Nil(t, req.Bairro)

	self, err := req.ToModel(false)
	require.NoError(t, err)
	assert.False(t, self.IsAdmin)
	assert.True(t, self.IsActive)
	require.NotNil(t, self.DataNascimento)

	byAdmin, err := req.ToModel(true)
	require.NoError(t, err)
	assert.True(t, byAdmin.IsAdmin)
}

func TestCreateUserRequest_Invalid(t *testing.T) {
	bad := "10/02/1990"
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"short password", CreateUserRequest{Nome: "Maria", Email: "m@x.test", Senha: "123"}},
		{"bad email", CreateUserRequest{Nome: "Maria", Email: "maria", Senha: "segredo1"}},
		{"missing name", CreateUserRequest{Email: "m@x.test", Senha: "segredo1"}},
		{"bad birth date", CreateUserRequest{Nome: "Maria", Email: "m@x.test", Senha: "segredo1",
			ProfileFields: ProfileFields{DataNascimento: &bad}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.Normalize()
			assert.Error(t, tt.req.Validate())
		})
	}
}
