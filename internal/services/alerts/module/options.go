package module

import "geoguardian/internal/platform/config"

// Options holds configuration settings for the alerts module
type Options struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
}

// FromConfig reads ALERTS_* keys
func FromConfig(cfg config.Conf) Options {
	v := cfg.Prefix("ALERTS_")
	return Options{
		SMTPHost: v.MustString("SMTP_HOST"),
		SMTPPort: v.MayInt("SMTP_PORT", 587),
		SMTPUser: v.MayString("SMTP_USER", ""),
		SMTPPass: v.MayString("SMTP_PASS", ""),
		From:     v.MustString("FROM"),
	}
}
