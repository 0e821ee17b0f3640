package module

import "geoguardian/internal/platform/config"

// Options holds configuration settings for the detection module
type Options struct {
	MaxUploadBytes int64
	DiffWidth      int
	DiffHeight     int
}

// FromConfig reads DETECTION_* keys
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("DETECTION_")
	return Options{
		MaxUploadBytes: int64(v.MayInt("MAX_UPLOAD_BYTES", 32<<20)),
		DiffWidth:      v.MayInt("DIFF_WIDTH", 512),
		DiffHeight:     v.MayInt("DIFF_HEIGHT", 512),
	}
}
