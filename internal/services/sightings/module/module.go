// Package module wires sightings into the process using modkit
package module

import (
	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"
	sightingsrepo "backr/internal/services/sightings/repo"
	sightingssvc "backr/internal/services/sightings/service"
)

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	name  string
	ports any
	svc   *sightingssvc.Service
}

// New constructs a sightings module. Without the CH seam on deps the module
// still mounts and its writer drops batches
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("sightings")}, opts...)...)

	var st *sightingsrepo.CH
	if deps.CH != nil {
		st = sightingsrepo.NewCH(deps.CH)
	}
	svc := sightingssvc.New(st)

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = Ports{Writer: svc, Query: svc}
	return m
}

// MountRoutes implements modkit.Module; sightings has no worker routes
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }
