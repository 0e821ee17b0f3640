// Package module wires timelapse into the API using modkit
package module

import (
	"net/http"

	modkit "geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	str "geoguardian/internal/platform/strings"
	tlhttp "geoguardian/internal/services/api/timelapse/http"
	tldom "geoguardian/internal/services/timelapse/domain"
)

// Ports the timelapse API module needs wired in
type Ports struct {
	Generator tldom.GeneratorPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// New constructs a timelapse API module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("timelapse"),
		modkit.WithPrefix("/timelapse"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("timelapse api module: expected WithPorts(timelapse/module.Ports)")
	}
	if ports.Generator == nil {
		panic("timelapse api module: Ports missing Generator")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		tlhttp.Register(r, ports.Generator)
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
