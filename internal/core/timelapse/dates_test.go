package timelapse

import (
	"reflect"
	"testing"

	perr "geoguardian/internal/platform/errors"
)

func TestDateRange_StepsAndAppendsEndDate(t *testing.T) {
	t.Parallel()

	got, err := DateRange("2025-01-01", "2025-02-10", 15)
	if err != nil {
		t.Fatalf("DateRange returned error: %v", err)
	}
	// 40-day span stepped by 15 overshoots, so the end date is appended
	want := []string{"2025-01-01", "2025-01-16", "2025-01-31", "2025-02-10"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DateRange = %v, want %v", got, want)
	}
}

func TestDateRange_ExactStepDoesNotDuplicateEnd(t *testing.T) {
	t.Parallel()

	got, err := DateRange("2025-03-01", "2025-03-31", 15)
	if err != nil {
		t.Fatalf("DateRange returned error: %v", err)
	}
	want := []string{"2025-03-01", "2025-03-16", "2025-03-31"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DateRange = %v, want %v", got, want)
	}
}

func TestDateRange_AdjacentDaysYieldTwoFrames(t *testing.T) {
	t.Parallel()

	got, err := DateRange("2025-06-01", "2025-06-02", DefaultIntervalDays)
	if err != nil {
		t.Fatalf("DateRange returned error: %v", err)
	}
	want := []string{"2025-06-01", "2025-06-02"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DateRange = %v, want %v", got, want)
	}
}

func TestDateRange_RejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
		interval   int
	}{
		{"start after end", "2025-05-01", "2025-04-01", 15},
		{"start equals end", "2025-05-01", "2025-05-01", 15},
		{"malformed start", "yesterday", "2025-05-01", 15},
		{"malformed end", "2025-05-01", "05/30/2025", 15},
		{"zero interval", "2025-05-01", "2025-06-01", 0},
		{"negative interval", "2025-05-01", "2025-06-01", -5},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := DateRange(c.start, c.end, c.interval)
			if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}
		})
	}
}
