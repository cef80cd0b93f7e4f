package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/church/schedules/dto"
	"churchhub_backend/internals/features/church/schedules/model"
	userModel "churchhub_backend/internals/features/users/user/model"
)

var (
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrUserNotFound       = errors.New("member not found")
)

type ListFilter struct {
	Mes  int
	Ano  int
	Tipo string
}

// ListSchedules returns schedules by date with their assignments flattened
// (userName joined from users) using one query per table.
func ListSchedules(ctx context.Context, db *gorm.DB, f ListFilter) ([]dto.ScheduleDTO, error) {
	tx := db.WithContext(ctx)
	q := tx.Model(&model.ScheduleModel{})
	if f.Mes > 0 {
		q = q.Where("mes = ?", f.Mes)
	}
	if f.Ano > 0 {
		q = q.Where("ano = ?", f.Ano)
	}
	if f.Tipo != "" {
		q = q.Where("tipo = ?", f.Tipo)
	}

	var schedules []model.ScheduleModel
	if err := q.Order("data ASC").Order("tipo ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return []dto.ScheduleDTO{}, nil
	}

	ids := make([]uuid.UUID, 0, len(schedules))
	for _, s := range schedules {
		ids = append(ids, s.ID)
	}
	byID, err := assignmentsFor(tx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, dto.ToScheduleDTO(s, byID[s.ID]))
	}
	return out, nil
}

func GetSchedule(ctx context.Context, db *gorm.DB, id uuid.UUID) (dto.ScheduleDTO, error) {
	tx := db.WithContext(ctx)
	s, err := findSchedule(tx, id)
	if err != nil {
		return dto.ScheduleDTO{}, err
	}
	byID, err := assignmentsFor(tx, []uuid.UUID{id})
	if err != nil {
		return dto.ScheduleDTO{}, err
	}
	return dto.ToScheduleDTO(*s, byID[id]), nil
}

func FindSchedule(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.ScheduleModel, error) {
	return findSchedule(db.WithContext(ctx), id)
}

// Assign validates position and ministry then inserts the assignment.
func Assign(ctx context.Context, db *gorm.DB, scheduleID, userID uuid.UUID, posicao string) (dto.AssignmentDTO, error) {
	var out dto.AssignmentDTO
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := findSchedule(tx, scheduleID)
		if err != nil {
			return err
		}
		u, err := checkAssignee(tx, s.Tipo, userID, posicao)
		if err != nil {
			return err
		}
		a := model.ScheduleAssignmentModel{ScheduleID: scheduleID, UserID: userID, Posicao: posicao}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		out = toAssignmentDTO(a, u.Nome)
		return nil
	})
	return out, err
}

// UpdateAssignment swaps the member and/or position; both are re-validated.
func UpdateAssignment(ctx context.Context, db *gorm.DB, id uuid.UUID, userID *uuid.UUID, posicao *string) (dto.AssignmentDTO, error) {
	var out dto.AssignmentDTO
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.ScheduleAssignmentModel
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAssignmentNotFound
			}
			return err
		}
		s, err := findSchedule(tx, a.ScheduleID)
		if err != nil {
			return err
		}
		if userID != nil {
			a.UserID = *userID
		}
		if posicao != nil {
			a.Posicao = *posicao
		}
		u, err := checkAssignee(tx, s.Tipo, a.UserID, a.Posicao)
		if err != nil {
			return err
		}
		if err := tx.Model(&a).Updates(map[string]any{"user_id": a.UserID, "posicao": a.Posicao}).Error; err != nil {
			return err
		}
		out = toAssignmentDTO(a, u.Nome)
		return nil
	})
	return out, err
}

func DeleteAssignment(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.ScheduleAssignmentModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func checkAssignee(tx *gorm.DB, tipo string, userID uuid.UUID, posicao string) (*userModel.UserModel, error) {
	if err := ValidatePosition(tipo, posicao); err != nil {
		return nil, err
	}
	var u userModel.UserModel
	if err := tx.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := CheckMinistry(tipo, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func findSchedule(tx *gorm.DB, id uuid.UUID) (*model.ScheduleModel, error) {
	var s model.ScheduleModel
	if err := tx.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &s, nil
}

func assignmentsFor(tx *gorm.DB, scheduleIDs []uuid.UUID) (map[uuid.UUID][]dto.AssignmentDTO, error) {
	var rows []dto.AssignmentDTO
	if err := tx.Table("schedule_assignments AS a").
		Select("a.id, a.schedule_id, a.user_id, u.nome AS user_name, a.posicao").
		Joins("JOIN users u ON u.id = a.user_id").
		Where("a.schedule_id IN ?", scheduleIDs).
		Order("a.posicao ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID][]dto.AssignmentDTO, len(scheduleIDs))
	for _, r := range rows {
		out[r.ScheduleID] = append(out[r.ScheduleID], r)
	}
	return out, nil
}

func toAssignmentDTO(a model.ScheduleAssignmentModel, userName string) dto.AssignmentDTO {
	return dto.AssignmentDTO{
		ID:         a.ID,
		ScheduleID: a.ScheduleID,
		UserID:     a.UserID,
		UserName:   userName,
		Posicao:    a.Posicao,
	}
}
