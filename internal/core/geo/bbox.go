// Package geo carries the tiny amount of geometry this system needs: a WGS84
// bounding box in [west, south, east, north] order
package geo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	perr "geoguardian/internal/platform/errors"
)

// BBox is [west, south, east, north] in degrees
type BBox [4]float64

// Accessors by compass name
func (b BBox) West() float64  { return b[0] }
func (b BBox) South() float64 { return b[1] }
func (b BBox) East() float64  { return b[2] }
func (b BBox) North() float64 { return b[3] }

// Validate checks ordering and world bounds
func (b BBox) Validate() error {
	if b.West() < -180 || b.East() > 180 || b.South() < -90 || b.North() > 90 {
		return perr.InvalidArgf("bbox out of world bounds: %v", b)
	}
	if b.West() >= b.East() {
		return perr.InvalidArgf("bbox west (%v) must be less than east (%v)", b.West(), b.East())
	}
	if b.South() >= b.North() {
		return perr.InvalidArgf("bbox south (%v) must be less than north (%v)", b.South(), b.North())
	}
	return nil
}

// String renders the comma form used in query params and logs
func (b BBox) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b[0], b[1], b[2], b[3])
}

// UnmarshalJSON accepts both the array form [w,s,e,n] and the comma string
// form "w,s,e,n" that older clients send
func (b *BBox) UnmarshalJSON(data []byte) error {
	var arr []float64
	if err := json.Unmarshal(data, &arr); err == nil {
		return b.fromSlice(arr)
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return perr.InvalidArgf("bbox must be an array or comma string of 4 numbers")
	}
	parts := strings.Split(s, ",")
	arr = arr[:0]
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return perr.InvalidArgf("bbox component %q is not a number", strings.TrimSpace(p))
		}
		arr = append(arr, f)
	}
	return b.fromSlice(arr)
}

func (b *BBox) fromSlice(arr []float64) error {
	if len(arr) != 4 {
		return perr.InvalidArgf("bbox needs exactly 4 numbers, got %d", len(arr))
	}
	copy(b[:], arr)
	return nil
}

// MarshalJSON always emits the array form
func (b BBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64(b))
}
