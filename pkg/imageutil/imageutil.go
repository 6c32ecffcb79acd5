// Package imageutil shrinks uploaded images into inline JPEG data URLs small
// enough to live inside a single document record.
package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	// DefaultMaxWidth matches the upload widget's preview width
	DefaultMaxWidth = 800
	// DefaultByteBudget leaves headroom under the store's 1 MiB document limit
	DefaultByteBudget = 700 * 1024
)

// ErrUnsupportedImage is returned for uploads that are not a decodable image
var ErrUnsupportedImage = errors.New("unsupported image format")

// ErrBudgetExceeded is returned when no encoding fits the byte budget
var ErrBudgetExceeded = errors.New("image does not fit the size budget")

var jpegQualities = []int{85, 75, 65, 50, 40, 30}

// CompressToDataURL decodes an uploaded image, downscales it to at most
// maxWidth, and re-encodes it as a JPEG data URL whose decoded size fits
// byteBudget. Quality is stepped down first; if the lowest quality still
// exceeds the budget the width is halved and the sweep restarts.
func CompressToDataURL(data []byte, maxWidth, byteBudget int) (string, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if byteBudget <= 0 {
		byteBudget = DefaultByteBudget
	}

	src, err := decode(data)
	if err != nil {
		return "", err
	}

	width := src.Bounds().Dx()
	if width > maxWidth {
		width = maxWidth
	}

	for width >= 16 {
		scaled := scale(src, width)
		for _, quality := range jpegQualities {
			var buf bytes.Buffer
			if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: quality}); err != nil {
				return "", fmt.Errorf("encode jpeg: %w", err)
			}
			if buf.Len() <= byteBudget {
				return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
			}
		}
		width /= 2
	}
	return "", ErrBudgetExceeded
}

// DataURLSize estimates the decoded byte size of a base64 data URL
func DataURLSize(dataURL string) int {
	idx := strings.IndexByte(dataURL, ',')
	if idx < 0 {
		return 0
	}
	b64 := dataURL[idx+1:]
	padding := 0
	if strings.HasSuffix(b64, "==") {
		padding = 2
	} else if strings.HasSuffix(b64, "=") {
		padding = 1
	}
	return (len(b64)*3+3)/4 - padding
}

func decode(data []byte) (image.Image, error) {
	mtype := mimetype.Detect(data)
	reader := bytes.NewReader(data)

	switch mtype.String() {
	case "image/jpeg":
		return jpeg.Decode(reader)
	case "image/png":
		return png.Decode(reader)
	case "image/gif":
		return gif.Decode(reader)
	case "image/webp":
		return webp.Decode(reader)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, mtype.String())
	}
}

func scale(src image.Image, width int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= width {
		return src
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
