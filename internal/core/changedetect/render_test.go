package changedetect

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	perr "geoguardian/internal/platform/errors"
)

func decodePNG(t *testing.T, data []byte) *image.RGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode diff png: %v", err)
	}
	out := image.NewRGBA(img.Bounds())
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func TestRenderDiff_TintsChangedPixelsRed(t *testing.T) {
	t.Parallel()

	before := solidPNG(t, 8, 8, color.RGBA{A: 255})                        // black
	after := solidPNG(t, 8, 8, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white

	out, err := RenderDiff(before, after, 8, 8)
	if err != nil {
		t.Fatalf("RenderDiff returned error: %v", err)
	}

	img := decodePNG(t, out)
	r, g, b, a := img.At(4, 4).RGBA()
	// white pixel shifted toward red: R saturates at 255, G/B drop by 50
	if r>>8 != 255 || g>>8 != 205 || b>>8 != 205 || a>>8 != 255 {
		t.Fatalf("changed pixel = %d/%d/%d/%d, want 255/205/205/255", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestRenderDiff_CopiesUnchangedPixels(t *testing.T) {
	t.Parallel()

	c := color.RGBA{R: 30, G: 140, B: 90, A: 255}
	img := solidPNG(t, 8, 8, c)

	out, err := RenderDiff(img, img, 8, 8)
	if err != nil {
		t.Fatalf("RenderDiff returned error: %v", err)
	}

	got := decodePNG(t, out)
	r, g, b, _ := got.At(2, 3).RGBA()
	if byte(r>>8) != c.R || byte(g>>8) != c.G || byte(b>>8) != c.B {
		t.Fatalf("unchanged pixel = %d/%d/%d, want %d/%d/%d", r>>8, g>>8, b>>8, c.R, c.G, c.B)
	}
}

func TestRenderDiff_ScalesToRequestedSize(t *testing.T) {
	t.Parallel()

	before := solidPNG(t, 32, 16, color.RGBA{A: 255})
	after := solidPNG(t, 20, 40, color.RGBA{R: 255, A: 255})

	out, err := RenderDiff(before, after, 12, 12)
	if err != nil {
		t.Fatalf("RenderDiff returned error: %v", err)
	}

	img := decodePNG(t, out)
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 12 {
		t.Fatalf("diff size = %dx%d, want 12x12", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderDiff_RejectsNonPositiveDimensions(t *testing.T) {
	t.Parallel()

	img := solidPNG(t, 4, 4, color.RGBA{A: 255})

	if _, err := RenderDiff(img, img, 0, 64); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for zero width, got %v", err)
	}
	if _, err := RenderDiff(img, img, 64, -1); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for negative height, got %v", err)
	}
}
