// Package api provides the HTTP API for the application
package api

import (
	"backr/internal/platform/config"
	"backr/internal/platform/logger"
	phttp "backr/internal/platform/net/http"
	"backr/internal/platform/store"

	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	"backr/internal/modkit/module"
	"backr/internal/modkit/swaggerkit"

	apibrands "backr/internal/services/api/brands/module"
	apicreators "backr/internal/services/api/creators/module"
	metamod "backr/internal/services/api/meta/module"
	apioffers "backr/internal/services/api/offers/module"

	brandsmod "backr/internal/services/brands/module"
	creatorsmod "backr/internal/services/creators/module"
	offersmod "backr/internal/services/offers/module"
	sightingsmod "backr/internal/services/sightings/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Core modules own the storage-backed ports
	brands := brandsmod.New(deps)
	creators := creatorsmod.New(deps)
	offers := offersmod.New(deps)
	sightings := sightingsmod.New(deps)

	// API modules consume the core ports
	apiOffers := apioffers.New(deps, modkit.WithPorts(apioffers.Ports{
		Query: module.MustPortsOf[offersmod.Ports](offers).Query,
	}))
	apiCreators := apicreators.New(deps, modkit.WithPorts(apicreators.Ports{
		Query: module.MustPortsOf[creatorsmod.Ports](creators).Query,
	}))
	apiBrands := apibrands.New(deps, modkit.WithPorts(apibrands.Ports{
		Catalog:   module.MustPortsOf[brandsmod.Ports](brands).Catalog,
		Sightings: module.MustPortsOf[sightingsmod.Ports](sightings).Query,
	}))

	mods := []module.Module{
		metamod.New(deps),
		brands,
		creators,
		offers,
		sightings,
		apiOffers,
		apiCreators,
		apiBrands,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})
}
