package timelapse

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	perr "geoguardian/internal/platform/errors"
)

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

func TestStampDate_ProducesJPEGAtRequestedSize(t *testing.T) {
	t.Parallel()

	out, err := StampDate(whitePNG(t, 300, 200), "2025-06-01", 256, 128)
	if err != nil {
		t.Fatalf("StampDate returned error: %v", err)
	}

	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a decodable jpeg: %v", err)
	}
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 128 {
		t.Fatalf("frame size = %dx%d, want 256x128", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestStampDate_DarkensLabelBox(t *testing.T) {
	t.Parallel()

	out, err := StampDate(whitePNG(t, 256, 256), "2025-06-01", 256, 256)
	if err != nil {
		t.Fatalf("StampDate returned error: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}

	// box pixel away from the glyphs vs an untouched corner
	br, _, _, _ := img.At(150, 256-25).RGBA()
	cr, _, _, _ := img.At(250, 5).RGBA()
	if br>>8 > 120 {
		t.Fatalf("label box pixel r=%d, expected a darkened overlay", br>>8)
	}
	if cr>>8 < 200 {
		t.Fatalf("corner pixel r=%d, expected near-white outside the box", cr>>8)
	}
}

func TestStampDate_RejectsBadInput(t *testing.T) {
	t.Parallel()

	if _, err := StampDate([]byte("not an image"), "2025-06-01", 64, 64); !perr.IsCode(err, perr.ErrorCodeDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if _, err := StampDate(whitePNG(t, 8, 8), "2025-06-01", 0, 64); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for zero width, got %v", err)
	}
}
