package helper

import (
	"bytes"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

type WebPOptions struct {
	MaxWidth  int
	MaxHeight int
	Quality   float32 // 1..100, 80 when 0
}

var DefaultWebPOptions = WebPOptions{MaxWidth: 1600, MaxHeight: 1600, Quality: 82}

// ConvertToWebP decodes jpeg/png/gif/webp, shrinks it to fit the bounds keeping
// the aspect ratio and re-encodes as lossy webp.
func ConvertToWebP(raw []byte, filename string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(raw, filename)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if (opt.MaxWidth > 0 && b.Dx() > opt.MaxWidth) || (opt.MaxHeight > 0 && b.Dy() > opt.MaxHeight) {
		w, h := opt.MaxWidth, opt.MaxHeight
		if w <= 0 {
			w = b.Dx()
		}
		if h <= 0 {
			h = b.Dy()
		}
		img = imaging.Fit(img, w, h, imaging.CatmullRom)
	}

	q := opt.Quality
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeImage(raw []byte, filename string) (image.Image, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := raw
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	ext := strings.ToLower(filepath.Ext(filename))

	if strings.Contains(ct, "webp") || ext == ".webp" {
		return webp.Decode(bytes.NewReader(raw))
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unsupported image format %s / %s: %w", ct, ext, err)
	}
	return img, nil
}
