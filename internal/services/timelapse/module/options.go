package module

import "geoguardian/internal/platform/config"

// Options holds configuration settings for the timelapse module
type Options struct {
	MaxFrames     int
	DefaultWidth  int
	DefaultHeight int
}

// FromConfig reads TIMELAPSE_* keys
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("TIMELAPSE_")
	return Options{
		MaxFrames:     v.MayInt("MAX_FRAMES", 20),
		DefaultWidth:  v.MayInt("DEFAULT_WIDTH", 512),
		DefaultHeight: v.MayInt("DEFAULT_HEIGHT", 512),
	}
}
