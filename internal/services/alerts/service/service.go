// Package service provides the alert dispatcher implementation
package service

import (
	"context"
	"net/mail"
	"time"

	perr "geoguardian/internal/platform/errors"
	"geoguardian/internal/platform/logger"
	"geoguardian/internal/services/alerts/domain"
)

// Config for the alert dispatcher
type Config struct {
	From string
}

// Service implements domain.DispatcherPort
type Service struct {
	Sender domain.SenderPort
	Cfg    Config

	log logger.Logger
	now func() time.Time
}

// New constructs a new alert dispatcher
func New(sender domain.SenderPort, cfg Config) *Service {
	return &Service{
		Sender: sender,
		Cfg:    cfg,
		log:    *logger.Named("alerts"),
		now:    time.Now,
	}
}

// Send implements domain.DispatcherPort. It returns only after the sender
// confirms delivery, so callers can count sent alerts safely
func (s *Service) Send(ctx context.Context, recipient string, a domain.Alert) error {
	if _, err := mail.ParseAddress(recipient); err != nil {
		return perr.InvalidArgf("alert recipient %q is not a valid address", recipient)
	}

	a = a.Normalized(s.now())
	subject, html, err := render(a)
	if err != nil {
		return err
	}

	err = s.Sender.Send(ctx, domain.Message{
		From:    s.Cfg.From,
		To:      recipient,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "alert send failed")
	}

	s.log.Info().
		Str("severity", a.Severity).
		Float64("change_pct", a.ChangePercentage).
		Str("location", a.Location).
		Msg("alert sent")
	return nil
}
