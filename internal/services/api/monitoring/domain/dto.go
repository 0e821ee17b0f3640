// Package domain defines transport DTOs for the monitoring API
package domain

import "geoguardian/internal/core/geo"

// MonitoringInput carries the optional check settings. Pointers distinguish
// "absent" from zero values on update
type MonitoringInput struct {
	Enabled         *bool    `json:"enabled,omitempty"`
	Frequency       string   `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly" example:"weekly"`
	AlertSeverities []string `json:"alertOnSeverity,omitempty" validate:"omitempty,dive,oneof=low medium high"`
}

// RegionInput is the create/update request body
type RegionInput struct {
	Name        string           `json:"name" validate:"required,min=1,max=120" example:"Amazon Basin West"`
	Description string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	Location    string           `json:"location,omitempty" validate:"omitempty,max=200" example:"Brazil"`
	BBox        geo.BBox         `json:"bbox"`
	AlertEmail  string           `json:"alertEmail,omitempty" validate:"omitempty,email"`
	Monitoring  *MonitoringInput `json:"monitoring,omitempty"`
}

// CheckAccepted acknowledges an async manual check
type CheckAccepted struct {
	RegionID string `json:"region_id"`
	Message  string `json:"message"`
}
