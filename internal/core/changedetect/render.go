package changedetect

import (
	"bytes"
	"image"
	"image/png"

	perr "geoguardian/internal/platform/errors"
)

// RenderDiff resizes both captures to width by height and returns a PNG where
// changed pixels are tinted red. It uses the looser highlight distance so the
// visualization shows more than the strict comparison counts
func RenderDiff(before, after []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, perr.InvalidArgf("diff dimensions must be positive, got %dx%d", width, height)
	}

	bimg, err := decode(before)
	if err != nil {
		return nil, perr.WithField(err, "before")
	}
	aimg, err := decode(after)
	if err != nil {
		return nil, perr.WithField(err, "after")
	}

	b := coverResample(bimg, width, height)
	a := coverResample(aimg, width, height)

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			o := out.PixOffset(x, y)

			ar, ag, ab := a.pix[i], a.pix[i+1], a.pix[i+2]
			if rgbDistance(b.pix[i:i+3:i+3], a.pix[i:i+3:i+3]) > highlightDistance {
				out.Pix[o] = clampAdd(ar, 100)
				out.Pix[o+1] = clampSub(ag, 50)
				out.Pix[o+2] = clampSub(ab, 50)
			} else {
				out.Pix[o] = ar
				out.Pix[o+1] = ag
				out.Pix[o+2] = ab
			}
			out.Pix[o+3] = 0xff
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode diff png")
	}
	return buf.Bytes(), nil
}

func clampAdd(v byte, d int) byte {
	n := int(v) + d
	if n > 255 {
		return 255
	}
	return byte(n)
}

func clampSub(v byte, d int) byte {
	n := int(v) - d
	if n < 0 {
		return 0
	}
	return byte(n)
}
