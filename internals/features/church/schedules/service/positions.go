package service

import (
	"errors"
	"fmt"

	"churchhub_backend/internals/features/church/schedules/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

var (
	ErrInvalidTipo      = errors.New("tipo must be louvor or obreiros")
	ErrInvalidPosition  = errors.New("position is not valid for this schedule type")
	ErrMinistryRequired = errors.New("member is not part of this ministry")
)

var positionsByTipo = map[string][]string{
	model.TipoLouvor:   {"teclado", "violao", "baixo", "bateria", "voz", "backing"},
	model.TipoObreiros: {"obreiro-0", "obreiro-1", "obreiro-2", "obreiro-3"},
}

// Positions returns the allowed positions for tipo, nil when tipo is unknown.
func Positions(tipo string) []string {
	return positionsByTipo[tipo]
}

func IsValidTipo(tipo string) bool {
	_, ok := positionsByTipo[tipo]
	return ok
}

func ValidatePosition(tipo, posicao string) error {
	list, ok := positionsByTipo[tipo]
	if !ok {
		return ErrInvalidTipo
	}
	for _, p := range list {
		if p == posicao {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (allowed: %v)", ErrInvalidPosition, posicao, list)
}

// CheckMinistry: louvor needs ministerioLouvor, obreiros needs ministerioObreiro.
func CheckMinistry(tipo string, u userModel.UserModel) error {
	switch tipo {
	case model.TipoLouvor:
		if !u.MinisterioLouvor {
			return ErrMinistryRequired
		}
	case model.TipoObreiros:
		if !u.MinisterioObreiro {
			return ErrMinistryRequired
		}
	default:
		return ErrInvalidTipo
	}
	return nil
}
