// Package module implements the blobs service module
package module

import (
	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/modkit/repokit"
	"geoguardian/internal/services/blobs/domain"
	"geoguardian/internal/services/blobs/repo"
	"geoguardian/internal/services/blobs/service"
)

// Ports exposed by the blobs module
type Ports struct {
	Store domain.StorePort
}

// Module implements the blobs service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new blobs module
func New(deps modkit.Deps) *Module {
	svc := service.New(repokit.TxRunner(deps.PG), repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Store: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "blobs" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
