package service

import (
	"context"

	gomail "gopkg.in/gomail.v2"

	"geoguardian/internal/services/alerts/domain"
)

// SMTPConfig holds the mail relay settings
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
}

// SMTPSender implements domain.SenderPort over gomail
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender constructs a sender that dials per message; alert volume is
// far too low to justify a held connection
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send implements domain.SenderPort
func (s *SMTPSender) Send(ctx context.Context, m domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	return d.DialAndSend(msg)
}
