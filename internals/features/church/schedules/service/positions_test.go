package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"churchhub_backend/internals/features/church/schedules/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		tipo, posicao string
		want          error
	}{
		{model.TipoLouvor, "bateria", nil},
		{model.TipoLouvor, "backing", nil},
		{model.TipoLouvor, "obreiro-0", ErrInvalidPosition},
		{model.TipoObreiros, "obreiro-3", nil},
		{model.TipoObreiros, "obreiro-4", ErrInvalidPosition},
		{model.TipoObreiros, "voz", ErrInvalidPosition},
		{"infantil", "voz", ErrInvalidTipo},
	}
	for _, tt := range tests {
		err := ValidatePosition(tt.tipo, tt.posicao)
		if tt.want == nil {
			assert.NoError(t, err, "%s/%s", tt.tipo, tt.posicao)
			continue
		}
		assert.True(t, errors.Is(err, tt.want), "%s/%s: %v", tt.tipo, tt.posicao, err)
	}
}

func TestPositions(t *testing.T) {
	assert.Len(t, Positions(model.TipoLouvor), 6)
	assert.Len(t, Positions(model.TipoObreiros), 4)
	assert.Nil(t, Positions("outro"))
	assert.True(t, IsValidTipo(model.TipoObreiros))
	assert.False(t, IsValidTipo(""))
}

func TestCheckMinistry(t *testing.T) {
	louvor := userModel.UserModel{MinisterioLouvor: true}
	obreiro := userModel.UserModel{MinisterioObreiro: true}

	assert.NoError(t, CheckMinistry(model.TipoLouvor, louvor))
	assert.ErrorIs(t, CheckMinistry(model.TipoObreiros, louvor), ErrMinistryRequired)
	assert.NoError(t, CheckMinistry(model.TipoObreiros, obreiro))
	assert.ErrorIs(t, CheckMinistry(model.TipoLouvor, obreiro), ErrMinistryRequired)
	assert.ErrorIs(t, CheckMinistry("outro", louvor), ErrInvalidTipo)
}
