// Package module implements the regions service module
package module

import (
	"geoguardian/internal/modkit"
	"geoguardian/internal/modkit/httpkit"
	"geoguardian/internal/modkit/repokit"
	"geoguardian/internal/services/regions/domain"
	"geoguardian/internal/services/regions/repo"
	"geoguardian/internal/services/regions/service"
)

// Ports exposed by the regions module
type Ports struct {
	Crud  domain.CrudPort
	Check domain.CheckPort
}

// Module implements the regions service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new regions module
func New(deps modkit.Deps) *Module {
	db := repokit.WithBeginHooks(repokit.TxRunner(deps.PG), repo.OwnerStamp)
	svc := service.New(db, repo.NewPG())

	m := &Module{deps: deps}
	m.ports = Ports{Crud: svc, Check: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "regions" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// Prefix satisfies modkit.Module
func (m *Module) Prefix() string { return "" }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {}
