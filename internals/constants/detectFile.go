package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileKindImage = "image"
	FileKindPDF   = "pdf"
	FileKindVideo = "video"
	FileKindAudio = "audio"
	FileKindOther = "other"
)

func DetectFileKindFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return FileKindImage
	case ".pdf":
		return FileKindPDF
	case ".mp4", ".mov", ".webm":
		return FileKindVideo
	case ".mp3", ".wav", ".m4a":
		return FileKindAudio
	default:
		return FileKindOther
	}
}
