package imageutil

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x % 256),
				G: uint8(y % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	idx := strings.IndexByte(dataURL, ',')
	if idx < 0 {
		t.Fatalf("Malformed data URL: %q", dataURL[:32])
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		t.Fatalf("Failed to decode base64 payload: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Payload is not a valid JPEG: %v", err)
	}
	return img
}

func TestCompressToDataURL(t *testing.T) {
	data := encodeTestPNG(t, 400, 300)

	dataURL, err := CompressToDataURL(data, 0, 0)
	if err != nil {
		t.Fatalf("CompressToDataURL failed: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/jpeg;base64,") {
		t.Errorf("Expected JPEG data URL prefix, got %q", dataURL[:32])
	}
	if size := DataURLSize(dataURL); size > DefaultByteBudget {
		t.Errorf("Compressed size %d exceeds budget %d", size, DefaultByteBudget)
	}

	img := decodeDataURL(t, dataURL)
	if img.Bounds().Dx() != 400 {
		t.Errorf("Image under max width should keep its width, got %d", img.Bounds().Dx())
	}
}

func TestCompressToDataURLDownscalesWideImages(t *testing.T) {
	data := encodeTestPNG(t, 1600, 900)

	dataURL, err := CompressToDataURL(data, DefaultMaxWidth, DefaultByteBudget)
	if err != nil {
		t.Fatalf("CompressToDataURL failed: %v", err)
	}

	img := decodeDataURL(t, dataURL)
	if img.Bounds().Dx() > DefaultMaxWidth {
		t.Errorf("Expected width at most %d, got %d", DefaultMaxWidth, img.Bounds().Dx())
	}
	if img.Bounds().Dy() != img.Bounds().Dx()*900/1600 {
		t.Errorf("Aspect ratio not preserved: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCompressToDataURLRejectsNonImages(t *testing.T) {
	_, err := CompressToDataURL([]byte("definitely not an image"), 0, 0)
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("Expected ErrUnsupportedImage, got %v", err)
	}
}

func TestCompressToDataURLTightBudget(t *testing.T) {
	data := encodeTestPNG(t, 800, 600)

	// A small budget forces quality and width reduction but should still
	// produce something for a modest image
	dataURL, err := CompressToDataURL(data, 0, 8*1024)
	if err != nil {
		t.Fatalf("CompressToDataURL failed: %v", err)
	}
	if size := DataURLSize(dataURL); size > 8*1024 {
		t.Errorf("Compressed size %d exceeds budget %d", size, 8*1024)
	}
}

func TestDataURLSize(t *testing.T) {
	payload := []byte("0123456789")
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)
	if got := DataURLSize(dataURL); got != len(payload) {
		t.Errorf("Expected %d, got %d", len(payload), got)
	}
	if got := DataURLSize("no comma here"); got != 0 {
		t.Errorf("Expected 0 for malformed data URL, got %d", got)
	}
}
