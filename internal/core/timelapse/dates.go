// Package timelapse holds the pure frame-sequence building blocks: date
// stepping and per-frame date labeling. Fetching and storage live with the
// service that orchestrates them
package timelapse

import (
	"time"

	perr "geoguardian/internal/platform/errors"
)

// DateLayout is the wire format for capture dates
const DateLayout = "2006-01-02"

// DefaultIntervalDays spaces frames roughly two Sentinel-2 revisits apart
const DefaultIntervalDays = 15

// DateRange expands [start, end] into capture dates stepped every
// intervalDays. The start date is always first and the end date is always
// last, even when the step overshoots it
func DateRange(start, end string, intervalDays int) ([]string, error) {
	if intervalDays <= 0 {
		return nil, perr.InvalidArgf("interval must be positive, got %d", intervalDays)
	}
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, perr.InvalidArgf("start date %q: want YYYY-MM-DD", start)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, perr.InvalidArgf("end date %q: want YYYY-MM-DD", end)
	}
	if !s.Before(e) {
		return nil, perr.InvalidArgf("start date must be before end date")
	}

	var dates []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, intervalDays) {
		dates = append(dates, d.Format(DateLayout))
	}
	if dates[len(dates)-1] != end {
		dates = append(dates, end)
	}
	return dates, nil
}
