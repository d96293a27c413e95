// Package module wires brands into the process using modkit
package module

import (
	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"
	brandsrepo "backr/internal/services/brands/repo"
	brandssvc "backr/internal/services/brands/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	ports  any
	svc    *brandssvc.Svc
}

// New constructs a brands module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("brands"), modkit.WithPrefix("/brands")}, opts...)...)

	svc := brandssvc.New(deps.PG, brandsrepo.NewPG())

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		svc:    svc,
	}
	m.ports = Ports{Catalog: svc, Ensurer: svc}
	return m
}

// MountRoutes implements modkit.Module; brands has no worker routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Service exposes the concrete service for sibling modules
func (m *Module) Service() *brandssvc.Svc { return m.svc }
