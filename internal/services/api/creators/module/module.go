// Package module wires creator endpoints into the API
package module

import (
	"net/http"

	modkit "backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"

	creatorshttp "backr/internal/services/api/creators/http"
	creatorsdom "backr/internal/services/creators/domain"
)

// Ports are the sibling ports this module consumes
type Ports struct {
	Query creatorsdom.QueryPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs a creators API module. The creators query port must be
// injected with modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("creators-api"),
		modkit.WithPrefix("/creators"),
	}, opts...)...)

	p, ok := b.Ports.(Ports)
	if !ok || p.Query == nil {
		panic("creators api module requires a creators query port")
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		creatorshttp.Register(r, p.Query)
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
func (m *Module) Name() string { return str.MustString(m.name, "creators-api") }

// Ports implements the modkit.Module interface; this module only consumes
func (m *Module) Ports() any { return nil }
