// Package module wires creators into the process using modkit
package module

import (
	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"
	creatorsrepo "backr/internal/services/creators/repo"
	creatorssvc "backr/internal/services/creators/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	name  string
	ports any
	svc   *creatorssvc.Svc
}

// New constructs a creators module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("creators")}, opts...)...)

	svc := creatorssvc.New(deps.PG, creatorsrepo.NewPG())

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = Ports{Ensurer: svc, Query: svc}
	return m
}

// MountRoutes implements modkit.Module; creators has no worker routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Service exposes the concrete service for sibling modules
func (m *Module) Service() *creatorssvc.Svc { return m.svc }
