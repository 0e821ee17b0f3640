// Package domain defines monitored region types
package domain

import (
	"net/mail"
	"strings"
	"time"

	"geoguardian/internal/core/geo"
	perr "geoguardian/internal/platform/errors"
)

// Frequency is how often a region is checked
type Frequency string

// Supported check frequencies
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a supported frequency
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Severities a region may alert on
var knownSeverities = map[string]bool{"low": true, "medium": true, "high": true}

// Monitoring holds the per-region check settings
type Monitoring struct {
	Enabled         bool      `json:"enabled"`
	Frequency       Frequency `json:"frequency"`
	AlertSeverities []string  `json:"alert_severities"`
}

// Region is a monitored area of interest owned by a single caller
type Region struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	BBox        geo.BBox   `json:"bbox"`
	AlertEmail  string     `json:"alert_email"`
	Monitoring  Monitoring `json:"monitoring"`

	LastCheckedAt   *time.Time `json:"last_checked_at"`
	LastBlobID      *string    `json:"last_blob_id"`
	LastChangePct   float64    `json:"last_change_pct"`
	TotalAlertsSent int        `json:"total_alerts_sent"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the caller-supplied fields
func (r Region) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return perr.InvalidArgf("region name is required")
	}
	if err := r.BBox.Validate(); err != nil {
		return err
	}
	if !r.Monitoring.Frequency.Valid() {
		return perr.InvalidArgf("frequency %q: want daily, weekly, or monthly", r.Monitoring.Frequency)
	}
	for _, s := range r.Monitoring.AlertSeverities {
		if !knownSeverities[s] {
			return perr.InvalidArgf("alert severity %q: want low, medium, or high", s)
		}
	}
	if r.AlertEmail != "" {
		if _, err := mail.ParseAddress(r.AlertEmail); err != nil {
			return perr.InvalidArgf("alert email %q is not a valid address", r.AlertEmail)
		}
	}
	return nil
}

// AlertsOn reports whether the region wants alerts for the given severity
func (r Region) AlertsOn(severity string) bool {
	for _, s := range r.Monitoring.AlertSeverities {
		if s == severity {
			return true
		}
	}
	return false
}
