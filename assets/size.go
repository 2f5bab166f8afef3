package assets

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Dimensions holds the intrinsic pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
	Format string // "png", "jpeg", "gif", "bmp", "tiff", "webp"
}

// Size reads the intrinsic dimensions of raw image bytes. Only the header
// is decoded, never the pixel data.
func Size(data []byte) (Dimensions, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Dimensions{}, fmt.Errorf("failed to read image header: %w", err)
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height, Format: name}, nil
}

// DisplayWidth suggests a display width percentage for an image placed in
// a page body maxWidth pixels wide. Images narrower than the body keep
// their natural proportion of it; wider images are capped at full width.
func DisplayWidth(d Dimensions, maxWidth int) float64 {
	if d.Width <= 0 || maxWidth <= 0 {
		return 100
	}
	pct := float64(d.Width) / float64(maxWidth) * 100
	if pct > 100 {
		return 100
	}
	if pct < 5 {
		return 5
	}
	return pct
}
