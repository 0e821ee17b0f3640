// Package module wires change detection into the API using modkit
package module

import (
	"net/http"

	modkit "geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	str "geoguardian/internal/platform/strings"
	detecthttp "geoguardian/internal/services/api/detection/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// New constructs a detection module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("detection"),
		modkit.WithPrefix("/detection"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		detecthttp.Register(r, detecthttp.Config{
			MaxUploadBytes: cfg.MaxUploadBytes,
			DiffWidth:      cfg.DiffWidth,
			DiffHeight:     cfg.DiffHeight,
		})
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
