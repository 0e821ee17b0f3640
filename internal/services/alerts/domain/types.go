// Package domain defines alert types for change notifications
package domain

import "time"

// Alert carries one change report to a recipient
type Alert struct {
	ChangePercentage float64
	ChangedPixels    int
	TotalPixels      int
	Severity         string
	ChangeType       string
	Summary          string
	Location         string
	Date             string
}

// Normalized returns a copy with safe placeholders for anything missing, so
// a partial report still renders a coherent email
func (a Alert) Normalized(now time.Time) Alert {
	if a.Severity == "" {
		a.Severity = "unknown"
	}
	if a.ChangeType == "" {
		a.ChangeType = "Unknown Change"
	}
	if a.Summary == "" {
		a.Summary = "Environmental change detected"
	}
	if a.Location == "" {
		a.Location = "Monitored Area"
	}
	if a.Date == "" {
		a.Date = now.Format("2006-01-02")
	}
	return a
}

// Message is a rendered email ready for the wire
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}
