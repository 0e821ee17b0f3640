package changedetect

import (
	"math"

	perr "geoguardian/internal/platform/errors"
)

// Compare analyzes two encoded captures and reports how much of the shared
// area changed. Both inputs are normalized to the smaller common size
// (min width, min height) before the per-pixel pass; the larger capture is
// silently downsampled
func Compare(before, after []byte) (Report, error) {
	bimg, err := decode(before)
	if err != nil {
		return Report{}, perr.WithField(err, "before")
	}
	aimg, err := decode(after)
	if err != nil {
		return Report{}, perr.WithField(err, "after")
	}

	w := min(bimg.Bounds().Dx(), aimg.Bounds().Dx())
	h := min(bimg.Bounds().Dy(), aimg.Bounds().Dy())

	b := coverResample(bimg, w, h)
	a := coverResample(aimg, w, h)

	changed := 0
	total := w * h
	for i := 0; i < len(b.pix); i += 3 {
		if rgbDistance(b.pix[i:i+3:i+3], a.pix[i:i+3:i+3]) > changedDistance {
			changed++
		}
	}

	pct := float64(changed) / float64(total) * 100
	severity := SeverityFor(pct)
	changeType := ChangeTypeFor(pct)

	return Report{
		ChangePercentage: math.Round(pct*100) / 100,
		ChangedPixels:    changed,
		TotalPixels:      total,
		Severity:         severity,
		ChangeType:       changeType,
		Summary:          SummaryFor(severity, pct),
	}, nil
}

// rgbDistance is the Euclidean distance between two RGB triples
func rgbDistance(p, q []byte) float64 {
	dr := float64(int(q[0]) - int(p[0]))
	dg := float64(int(q[1]) - int(p[1]))
	db := float64(int(q[2]) - int(p[2]))
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
