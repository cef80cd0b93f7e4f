package controller

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"churchhub_backend/internals/features/uploads/service"
	helper "churchhub_backend/internals/helpers"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// POST /api/upload (multipart, field "file")
func (uc *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field 'file' is required")
	}
	if fh.Size > service.MaxUploadBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, service.ErrTooLarge.Error())
	}

	f, err := fh.Open()
	if err != nil {
		log.Println("[ERROR] open upload:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not read file")
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, service.MaxUploadBytes+1))
	if err != nil {
		log.Println("[ERROR] read upload:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not read file")
	}

	out, err := service.Store(raw, fh.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyFile), errors.Is(err, service.ErrUnsupportedFile):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrTooLarge):
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, err.Error())
		}
		log.Println("[ERROR] store upload:", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Could not process file")
	}
	return helper.JsonCreated(c, "File uploaded", out)
}
