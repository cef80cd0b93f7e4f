package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"churchhub_backend/internals/configs"
	"churchhub_backend/internals/constants"
	helper "churchhub_backend/internals/helpers"
)

const MaxUploadBytes = 25 << 20

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrTooLarge        = errors.New("file exceeds 25MB")
	ErrUnsupportedFile = errors.New("only images, pdf, video and audio are accepted")
)

type Stored struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	Size int    `json:"size"`
}

// Store writes raw to the upload dir. Images are resized and re-encoded as webp;
// everything else is kept byte for byte.
func Store(raw []byte, originalName string) (Stored, error) {
	if len(raw) == 0 {
		return Stored{}, ErrEmptyFile
	}
	if len(raw) > MaxUploadBytes {
		return Stored{}, ErrTooLarge
	}

	kind := constants.DetectFileKindFromExt(originalName)
	ext := strings.ToLower(filepath.Ext(originalName))
	data := raw
	switch kind {
	case constants.FileKindImage:
		webp, err := helper.ConvertToWebP(raw, originalName, helper.DefaultWebPOptions)
		if err != nil {
			return Stored{}, fmt.Errorf("convert image: %w", err)
		}
		data, ext = webp, ".webp"
	case constants.FileKindOther:
		return Stored{}, ErrUnsupportedFile
	}

	name := StoredName(originalName, ext)
	if err := os.MkdirAll(configs.UploadDir, 0o755); err != nil {
		return Stored{}, err
	}
	if err := os.WriteFile(filepath.Join(configs.UploadDir, name), data, 0o644); err != nil {
		return Stored{}, err
	}
	return Stored{
		URL:  configs.PublicBaseURL + "/uploads/" + name,
		Name: name,
		Kind: kind,
		Size: len(data),
	}, nil
}

// StoredName is "<slug>-<8 hex>.<ext>" so names stay readable and never collide.
func StoredName(originalName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	return helper.Slugify(base, 60) + "-" + uuid.NewString()[:8] + ext
}
