// Package module wires offer endpoints into the API
package module

import (
	"net/http"

	modkit "backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"

	offershttp "backr/internal/services/api/offers/http"
	offersdom "backr/internal/services/offers/domain"
)

// Ports are the sibling ports this module consumes
type Ports struct {
	Query offersdom.QueryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs an offers API module. The offers query port must be
// injected with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("offers-api"),
		modkit.WithPrefix("/offers"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Query == nil {
		panic("offers api module requires an offers query port")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		offershttp.Register(r, p.Query)
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
func (m *Module) Name() string { return str.MustString(m.name, "offers-api") }

// Ports implements the modkit.Module interface; this module only consumes
func (m *Module) Ports() any { return nil }
