// Package module wires offers into the process using modkit
package module

import (
	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"
	offersrepo "backr/internal/services/offers/repo"
	offerssvc "backr/internal/services/offers/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	name  string
	ports any
	svc   *offerssvc.Svc
}

// New constructs an offers module
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("offers")}, opts...)...)

	svc := offerssvc.New(deps.PG, offersrepo.NewPG())

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// MountRoutes implements modkit.Module; offers has no worker routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Service exposes the concrete service for sibling modules
func (m *Module) Service() *offerssvc.Svc { return m.svc }
