package timelapse

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	// frames arrive as whatever the provider served
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	perr "geoguardian/internal/platform/errors"
)

const jpegQuality = 85

// label box geometry, anchored to the bottom-left corner
const (
	labelBoxX      = 10
	labelBoxW      = 150
	labelBoxH      = 30
	labelBoxBottom = 10 // gap below the box
	labelTextX     = 20
	labelTextUp    = 18 // text baseline offset from the frame bottom
)

// StampDate resizes a capture to width by height and burns the date into a
// translucent box in the lower-left corner, returning a JPEG frame
func StampDate(data []byte, date string, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, perr.InvalidArgf("frame dimensions must be positive, got %dx%d", width, height)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecode, "decode frame")
	}

	frame := coverResize(src, width, height)

	box := image.Rect(
		labelBoxX,
		height-labelBoxH-labelBoxBottom,
		labelBoxX+labelBoxW,
		height-labelBoxBottom,
	)
	draw.Draw(frame, box, image.NewUniform(color.NRGBA{A: 178}), image.Point{}, draw.Over)

	d := font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(labelTextX, height-labelTextUp),
	}
	d.DrawString(date)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode frame jpeg")
	}
	return buf.Bytes(), nil
}

// coverResize scales src to exactly w by h, center-cropping whichever axis
// overflows the target aspect
func coverResize(src image.Image, w, h int) *image.RGBA {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()

	crop := sb
	if sw*h > sh*w {
		cw := sh * w / h
		x0 := sb.Min.X + (sw-cw)/2
		crop = image.Rect(x0, sb.Min.Y, x0+cw, sb.Max.Y)
	} else if sw*h < sh*w {
		ch := sw * h / w
		y0 := sb.Min.Y + (sh-ch)/2
		crop = image.Rect(sb.Min.X, y0, sb.Max.X, y0+ch)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}
