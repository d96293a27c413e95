// Package module wires brand endpoints into the API
package module

import (
	"net/http"

	modkit "backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"

	brandshttp "backr/internal/services/api/brands/http"
	brandsdom "backr/internal/services/brands/domain"
	sightingsdom "backr/internal/services/sightings/domain"
)

// Ports are the sibling ports this module consumes
type Ports struct {
	Catalog   brandsdom.CatalogPort
	Sightings sightingsdom.QueryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs a brands API module. The brand catalog port must be
// injected with modkit.WithPorts; the sightings port is optional
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("brands-api"),
		modkit.WithPrefix("/brands"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Catalog == nil {
		panic("brands api module requires a brand catalog port")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		brandshttp.Register(r, p.Catalog, p.Sightings)
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

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "brands-api") }

// Ports implements the modkit.Module interface; this module only consumes
func (m *Module) Ports() any { return nil }
