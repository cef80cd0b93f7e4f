package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"churchhub_backend/internals/features/users/user/dto"
	"churchhub_backend/internals/features/users/user/model"
	"churchhub_backend/internals/features/users/user/service"
	helper "churchhub_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// GET /api/admin/members?q=&page=&per_page=
func (uc *UserAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] List members count:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	var users []model.UserModel
	if err := q.Order("nome ASC").Offset(p.Offset).Limit(p.Limit).Find(&users).Error; err != nil {
		log.Println("[ERROR] List members:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}

	pg := helper.BuildPagination(total, p, len(users))
	return helper.JsonList(c, "ok", dto.ToUserDTOs(users), &pg)
}

// GET /api/admin/members/:id
func (uc *UserAdminController) Get(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToUserDTO(*user))
}

// POST /api/admin/members
func (uc *UserAdminController) Create(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}

	user, err := body.ToModel(true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	hashed, err := hashIfPresent(&body.Senha)
	if err != nil {
		log.Println("[ERROR] hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	user.Senha = *hashed

	if err := uc.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] Create member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create member")
	}
	return helper.JsonCreated(c, "Member created", dto.ToUserDTO(*user))
}

// PUT /api/admin/members/:id
func (uc *UserAdminController) Update(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()
	if err := body.Validate(); err != nil {
		return helper.JsonValidationError(c, "", helper.FieldErrors(err))
	}
	if err := body.ApplyTo(user); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	hashed, err := hashIfPresent(body.Senha)
	if err != nil {
		log.Println("[ERROR] hash password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if hashed != nil {
		user.Senha = *hashed
	}

	if err := uc.DB.WithContext(c.UserContext()).Save(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] Update member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonUpdated(c, "Member updated", dto.ToUserDTO(*user))
}

// DELETE /api/admin/members/:id, completions, enrollments and assignments cascade
func (uc *UserAdminController) Delete(c *fiber.Ctx) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	if me, _ := helper.GetUserIDFromToken(c); me == user.ID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own account")
	}
	if err := uc.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", user.ID).Error; err != nil {
		log.Println("[ERROR] Delete member:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}
	return helper.JsonDeleted(c, "Member deleted", fiber.Map{"id": user.ID})
}

// PATCH /api/admin/members/:id/toggle-admin
func (uc *UserAdminController) ToggleAdmin(c *fiber.Ctx) error {
	return uc.toggle(c, "is_admin", func(u *model.UserModel) bool { u.IsAdmin = !u.IsAdmin; return u.IsAdmin })
}

// PATCH /api/admin/members/:id/toggle-lider
func (uc *UserAdminController) ToggleLider(c *fiber.Ctx) error {
	return uc.toggle(c, "is_lider", func(u *model.UserModel) bool { u.IsLider = !u.IsLider; return u.IsLider })
}

func (uc *UserAdminController) toggle(c *fiber.Ctx, column string, flip func(*model.UserModel) bool) error {
	user, err := uc.find(c)
	if err != nil {
		return err
	}
	if me, _ := helper.GetUserIDFromToken(c); me == user.ID && column == "is_admin" {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot change your own admin flag")
	}
	v := flip(user)
	if err := uc.DB.WithContext(c.UserContext()).Model(user).Update(column, v).Error; err != nil {
		log.Printf("[ERROR] toggle %s: %v", column, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}
	return helper.JsonUpdated(c, "Member updated", dto.ToUserDTO(*user))
}

// GET /api/admin/analytics/members
func (uc *UserAdminController) Analytics(c *fiber.Ctx) error {
	out, err := service.LoadMemberAnalytics(c.UserContext(), uc.DB, time.Now())
	if err != nil {
		log.Println("[ERROR] member analytics:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute analytics")
	}
	return helper.JsonOK(c, "ok", out)
}

func (uc *UserAdminController) find(c *fiber.Ctx) (*model.UserModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}
	var user model.UserModel
	if err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Println("[ERROR] find member:", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load member")
	}
	return &user, nil
}
