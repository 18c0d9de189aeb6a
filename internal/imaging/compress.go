// Package imaging prepares page thumbnails for transmission to the vision
// model: bounded width, bounded encoded size, quality traded away as needed.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/cbruhn/drawing-archive/constants"
)

// DataURL decodes a stored thumbnail, downscales it to at most
// constants.MaxImageWidth, and JPEG-encodes it under constants.MaxUploadBytes
// by stepping the quality down to a floor. The result is a data: URL ready
// for an image content part.
func DataURL(src []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("decode thumbnail: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > constants.MaxImageWidth {
		h := b.Dy() * constants.MaxImageWidth / b.Dx()
		dst := image.NewRGBA(image.Rect(0, 0, constants.MaxImageWidth, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	for q := constants.JPEGStartQuality; ; q -= constants.JPEGQualityStep {
		buf.Reset()
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: q}); err != nil {
			return "", fmt.Errorf("encode jpeg: %w", err)
		}
		if buf.Len() <= constants.MaxUploadBytes || q <= constants.JPEGMinQuality {
			break
		}
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
