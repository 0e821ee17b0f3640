// Package module implements the monitor service module
package module

import (
	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/services/monitor/domain"
	"geoguardian/internal/services/monitor/service"
)

// Ports exposed by the monitor module
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the monitor service module
type Module struct {
	deps   modkit.Deps
	ports  Ports
	worker *service.Worker
}

// New constructs a new monitor module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("monitor"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("monitor module: expected WithPorts(monitor/domain.Ports)")
	}
	if ports.Regions == nil || ports.Blobs == nil || ports.Imagery == nil || ports.Alerts == nil {
		panic("monitor module: Ports missing a dependency")
	}

	cfg := FromConfig(deps.Cfg)
	svc := service.New(ports, service.Config{
		MinUsableBytes: cfg.MinUsableBytes,
		CaptureWidth:   cfg.CaptureWidth,
		CaptureHeight:  cfg.CaptureHeight,
	})
	worker := service.NewWorker(svc, service.WorkerConfig{
		DailySpec:   cfg.DailySpec,
		WeeklySpec:  cfg.WeeklySpec,
		MonthlySpec: cfg.MonthlySpec,
	})

	m := &Module{deps: deps, worker: worker}
	m.ports = Ports{Runner: svc}
	return m
}

// Worker returns the cron-driven batch runner for the sentry binary
func (m *Module) Worker() *service.Worker { return m.worker }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "monitor" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
