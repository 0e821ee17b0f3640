// Package domain defines the monitoring cycle types
package domain

import "geoguardian/internal/core/changedetect"

// Status is what a single region check did
type Status string

// Check outcomes
const (
	StatusSkippedNoData Status = "skipped_no_data"
	StatusBaselineSet   Status = "baseline_set"
	StatusCompared      Status = "compared"
)

// Outcome summarizes one region check
type Outcome struct {
	Status  Status               `json:"status"`
	Report  *changedetect.Report `json:"report,omitempty"`
	Alerted bool                 `json:"alerted"`
}
