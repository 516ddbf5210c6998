package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImageAcceptsPNG(t *testing.T) {
	p := NewImageProcessor()
	assert.NoError(t, p.ValidateImage(encodePNG(t, 100, 100)))
}

func TestValidateImageRejectsNonImage(t *testing.T) {
	p := NewImageProcessor()
	assert.Error(t, p.ValidateImage([]byte("not an image at all")))
}

func TestValidateImageRejectsOversize(t *testing.T) {
	p := &ImageProcessor{MaxSize: 64}
	assert.Error(t, p.ValidateImage(encodePNG(t, 100, 100)))
}

func TestValidateImageRejectsGIF(t *testing.T) {
	// a decodable format that is not on the allow list
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))

	p := NewImageProcessor()
	assert.Error(t, p.ValidateImage(buf.Bytes()))
}

func TestProcessImageProducesVariants(t *testing.T) {
	p := NewImageProcessor()

	variants, err := p.ProcessImage(encodePNG(t, 2000, 1000))
	require.NoError(t, err)

	require.Len(t, variants, 3)
	for _, name := range []string{"large", "medium", "thumbnail"} {
		require.Contains(t, variants, name)
		img, format, err := image.Decode(bytes.NewReader(variants[name]))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
		assert.LessOrEqual(t, img.Bounds().Dx(), 1200)
	}

	// thumbnail fits in a 300x300 box, aspect preserved
	thumb, err := jpeg.Decode(bytes.NewReader(variants["thumbnail"]))
	require.NoError(t, err)
	assert.LessOrEqual(t, thumb.Bounds().Dx(), 300)
	assert.LessOrEqual(t, thumb.Bounds().Dy(), 300)
}
