// Package module implements the timelapse service module
package module

import (
	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/services/timelapse/domain"
	"geoguardian/internal/services/timelapse/service"
)

// Ports exposed by the timelapse module
type Ports struct {
	Generator domain.GeneratorPort
}

// Module implements the timelapse service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new timelapse module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("timelapse"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("timelapse module: expected WithPorts(timelapse/domain.Ports)")
	}
	if ports.Blobs == nil || ports.Imagery == nil {
		panic("timelapse module: Ports missing Blobs or Imagery")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(ports, service.Config{
		MaxFrames:     cfg.MaxFrames,
		DefaultWidth:  cfg.DefaultWidth,
		DefaultHeight: cfg.DefaultHeight,
	})

	m := &Module{deps: deps}
	m.ports = Ports{Generator: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "timelapse" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
