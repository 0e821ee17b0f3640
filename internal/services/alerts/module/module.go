// Package module implements the alerts service module
package module

import (
	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/services/alerts/domain"
	"geoguardian/internal/services/alerts/service"
)

// Ports exposed by the alerts module
type Ports struct {
	Dispatcher domain.DispatcherPort
}

// Module implements the alerts service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new alerts module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	sender := service.NewSMTPSender(service.SMTPConfig{
		Host: opts.SMTPHost,
		Port: opts.SMTPPort,
		User: opts.SMTPUser,
		Pass: opts.SMTPPass,
	})
	svc := service.New(sender, service.Config{From: opts.From})

	m := &Module{deps: deps}
	m.ports = Ports{Dispatcher: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "alerts" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
