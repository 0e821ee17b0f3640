package module

import "geoguardian/internal/platform/config"

// Options holds configuration settings for the monitor module
type Options struct {
	DailySpec   string
	WeeklySpec  string
	MonthlySpec string

	MinUsableBytes int
	CaptureWidth   int
	CaptureHeight  int
}

// FromConfig reads MONITOR_* keys
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("MONITOR_")
	return Options{
		DailySpec:      v.MayString("DAILY_SPEC", "0 9 * * *"),
		WeeklySpec:     v.MayString("WEEKLY_SPEC", "0 9 * * 1"),
		MonthlySpec:    v.MayString("MONTHLY_SPEC", "0 9 1 * *"),
		MinUsableBytes: v.MayInt("MIN_USABLE_BYTES", 1000),
		CaptureWidth:   v.MayInt("CAPTURE_WIDTH", 512),
		CaptureHeight:  v.MayInt("CAPTURE_HEIGHT", 512),
	}
}
