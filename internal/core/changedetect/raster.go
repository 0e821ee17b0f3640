package changedetect

import (
	"bytes"
	"image"

	// register the codecs satellite providers and uploads actually use
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	perr "geoguardian/internal/platform/errors"
)

// raster is a tightly packed 8-bit RGB buffer
type raster struct {
	w, h int
	pix  []byte // len == w*h*3
}

// decode parses an encoded image and rejects empty rasters
func decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecode, "decode image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, perr.Decodef("image has zero dimensions")
	}
	return img, nil
}

// coverResample scales src to w by h, center-cropping the longer axis so the
// target is fully covered, then materializes raw RGB (alpha discarded)
func coverResample(src image.Image, w, h int) raster {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	crop := sb
	if sw*h > sh*w {
		// source wider than target aspect: trim left/right
		cw := sh * w / h
		x0 := sb.Min.X + (sw-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	} else if sw*h < sh*w {
		// source taller: trim top/bottom
		ch := sw * h / w
		y0 := sb.Min.Y + (sh-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)

	out := raster{w: w, h: h, pix: make([]byte, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := dst.PixOffset(x, y)
			i := (y*w + x) * 3
			out.pix[i] = dst.Pix[o]
			out.pix[i+1] = dst.Pix[o+1]
			out.pix[i+2] = dst.Pix[o+2]
		}
	}
	return out
}
