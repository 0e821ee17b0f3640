// Package domain defines transport DTOs for the timelapse API
package domain

import "geoguardian/internal/core/geo"

// GenerateInput is the generation request body. BBox accepts both the array
// and comma-string forms older clients send
type GenerateInput struct {
	StartDate    string   `json:"startDate" validate:"required,datetime=2006-01-02" example:"2025-01-01"`
	EndDate      string   `json:"endDate" validate:"required,datetime=2006-01-02" example:"2025-03-01"`
	BBox         geo.BBox `json:"bbox"`
	IntervalDays int      `json:"intervalDays,omitempty" validate:"omitempty,min=1" example:"15"`
	Width        int      `json:"width,omitempty" validate:"omitempty,min=64,max=2048" example:"512"`
	Height       int      `json:"height,omitempty" validate:"omitempty,min=64,max=2048" example:"512"`
}
