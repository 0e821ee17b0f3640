// Package domain defines transport DTOs for the detection API
package domain

import "geoguardian/internal/core/changedetect"

// CompareResponse is the change analysis plus an optional inline diff
type CompareResponse struct {
	changedetect.Report

	// DiffImage is a base64 PNG; empty when rendering failed, which never
	// fails the comparison itself
	DiffImage string `json:"diff_image,omitempty"`
}
