// Package domain defines timelapse sequence types
package domain

import "geoguardian/internal/core/geo"

// GenerateInput is a request to build one frame sequence
type GenerateInput struct {
	StartDate    string
	EndDate      string
	BBox         geo.BBox
	IntervalDays int
	Width        int
	Height       int
}

// Frame points at one stored sequence frame
type Frame struct {
	Ref         string `json:"frame_id"`
	FrameNumber int    `json:"frame_number"`
	Date        string `json:"date"`
	Size        int    `json:"size"`
}

// Sequence is the result of a generation run
type Sequence struct {
	ID         string   `json:"sequence_id"`
	Frames     []Frame  `json:"frames"`
	FrameCount int      `json:"frame_count"`
	Dates      []string `json:"dates"`
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	BBox       geo.BBox `json:"bbox"`
}
