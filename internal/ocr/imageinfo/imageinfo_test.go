package imageinfo

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// createTestImage creates a test image with the specified dimensions
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

// encodeJPEG encodes an image as JPEG
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	return buf.Bytes(), err
}

// encodePNG encodes an image as PNG
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	return buf.Bytes(), err
}

func TestInspector_Inspect_JPEG(t *testing.T) {
	i := New()

	data, err := encodeJPEG(createTestImage(570, 562))
	require.NoError(t, err)

	info, err := i.Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, Info{Format: "jpeg", Width: 570, Height: 562}, info)
	assert.Equal(t, "image/jpeg", info.MIMEType())
}

func TestInspector_Inspect_PNG(t *testing.T) {
	i := New()

	data, err := encodePNG(createTestImage(1000, 2000))
	require.NoError(t, err)

	info, err := i.Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, Info{Format: "png", Width: 1000, Height: 2000}, info)
	assert.Equal(t, "image/png", info.MIMEType())
}

func TestInspector_Inspect_BMP(t *testing.T) {
	i := New()

	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, createTestImage(16, 8)))

	info, err := i.Inspect(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "bmp", info.Format)
	assert.Equal(t, 16, info.Width)
	assert.Equal(t, 8, info.Height)
}

func TestInspector_Inspect_InvalidImageData(t *testing.T) {
	i := New()

	_, err := i.Inspect([]byte("not an image"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")

	_, err = i.Inspect(nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode image")
}

func TestInfo_MIMEType_Unknown(t *testing.T) {
	assert.Equal(t, "application/octet-stream", Info{Format: "pdf"}.MIMEType())
}
