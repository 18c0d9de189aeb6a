package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbruhn/drawing-archive/constants"
)

const dataURLPrefix = "data:image/jpeg;base64,"

func pngBytes(t *testing.T, w, h int, noisy bool) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if noisy {
				c = color.RGBA{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256)), A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, url string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(url, dataURLPrefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, dataURLPrefix))
	require.NoError(t, err)
	require.LessOrEqual(t, len(raw), constants.MaxUploadBytes)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestDataURLSmallImagePassesThrough(t *testing.T) {
	url, err := DataURL(pngBytes(t, 640, 480, false))
	require.NoError(t, err)

	img := decodeDataURL(t, url)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestDataURLDownscalesWideImages(t *testing.T) {
	url, err := DataURL(pngBytes(t, 2800, 1000, true))
	require.NoError(t, err)

	img := decodeDataURL(t, url)
	assert.Equal(t, constants.MaxImageWidth, img.Bounds().Dx())
	// aspect ratio preserved
	assert.Equal(t, 500, img.Bounds().Dy())
}

func TestDataURLRejectsGarbage(t *testing.T) {
	_, err := DataURL([]byte("not an image"))
	assert.Error(t, err)
}
