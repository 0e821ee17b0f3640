// Package changedetect implements pixel-level change analysis between two
// satellite captures of the same region
package changedetect

import "fmt"

// Severity buckets for a change report
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Change type labels. A simple percentage heuristic; spectral analysis or an
// ML classifier would be needed to tell deforestation from flooding
const (
	ChangeMinor       = "minor_change"
	ChangeModerate    = "moderate_change"
	ChangeSignificant = "significant_change"
)

// Detection thresholds. The comparison and highlight distances are separate
// knobs, as are the severity and change-type scales; do not fold them together
const (
	changedDistance   = 50.0 // Euclidean RGB distance above which a pixel counts as changed
	highlightDistance = 30.0 // looser distance used only by the diff rendering

	severityHighPct   = 20.0
	severityMediumPct = 10.0

	changeSignificantPct = 15.0
	changeModeratePct    = 8.0
)

// Report is the outcome of comparing two captures of the same region
type Report struct {
	ChangePercentage float64 `json:"change_percentage"`
	ChangedPixels    int     `json:"changed_pixels"`
	TotalPixels      int     `json:"total_pixels"`
	Severity         string  `json:"severity"`
	ChangeType       string  `json:"change_type"`
	Summary          string  `json:"summary"`
}

// SeverityFor buckets a change percentage into low/medium/high
func SeverityFor(pct float64) string {
	if pct > severityHighPct {
		return SeverityHigh
	}
	if pct > severityMediumPct {
		return SeverityMedium
	}
	return SeverityLow
}

// ChangeTypeFor labels a change percentage as minor/moderate/significant
func ChangeTypeFor(pct float64) string {
	if pct > changeSignificantPct {
		return ChangeSignificant
	}
	if pct > changeModeratePct {
		return ChangeModerate
	}
	return ChangeMinor
}

// SummaryFor renders the human summary for a severity with the percentage
// interpolated; an unknown severity falls back to the low template
func SummaryFor(severity string, pct float64) string {
	switch severity {
	case SeverityHigh:
		return fmt.Sprintf(
			"CRITICAL: %.2f%% change detected. Significant environmental change observed. Immediate review recommended.",
			pct,
		)
	case SeverityMedium:
		return fmt.Sprintf(
			"WARNING: %.2f%% change detected. Moderate environmental change observed. Further analysis recommended.",
			pct,
		)
	default:
		return fmt.Sprintf(
			"INFO: %.2f%% change detected. Minor change observed. Likely natural variation or seasonal effect.",
			pct,
		)
	}
}
