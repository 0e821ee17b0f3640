// Package module wires region monitoring into the API using modkit
package module

import (
	"net/http"

	modkit "geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	str "geoguardian/internal/platform/strings"
	monhttp "geoguardian/internal/services/api/monitoring/http"
	mondom "geoguardian/internal/services/monitor/domain"
	regdom "geoguardian/internal/services/regions/domain"
)

// Ports the monitoring API module needs wired in
type Ports struct {
	Regions regdom.CrudPort
	Runner  mondom.RunnerPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// New constructs a monitoring API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("monitoring"),
		modkit.WithPrefix("/monitoring"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("monitoring api module: expected WithPorts(monitoring/module.Ports)")
	}
	if ports.Regions == nil || ports.Runner == nil {
		panic("monitoring api module: Ports missing Regions or Runner")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		monhttp.Register(r, ports.Regions, ports.Runner)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
