package imageinfo

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

// Info describes an encoded image without decoding its pixels
type Info struct {
	Format string
	Width  int
	Height int
}

// MIMEType returns the media type for the detected format
func (i Info) MIMEType() string {
	switch i.Format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "bmp":
		return "image/bmp"
	case "tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}

// Inspector reads image headers
type Inspector struct{}

// New creates a new Inspector instance
func New() *Inspector {
	return &Inspector{}
}

// Inspect detects the format and dimensions of an encoded image
func (i *Inspector) Inspect(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, fmt.Errorf("failed to decode image: empty data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image: %w", err)
	}
	return Info{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
