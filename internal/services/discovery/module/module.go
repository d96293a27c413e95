// Package module wires discovery into the process using modkit
package module

import (
	"backr/internal/modkit"
	"backr/internal/modkit/httpkit"
	str "backr/internal/platform/strings"

	"backr/internal/adapters/ingest/sponsorblock"
	"backr/internal/adapters/ingest/transcript"
	"backr/internal/adapters/ingest/youtube"

	brandsmod "backr/internal/services/brands/module"
	creatorsmod "backr/internal/services/creators/module"
	discsvc "backr/internal/services/discovery/service"
	offersmod "backr/internal/services/offers/module"
	sightingsmod "backr/internal/services/sightings/module"
)

// Wires are the sibling module ports discovery drives
type Wires struct {
	Brands    brandsmod.Ports
	Creators  creatorsmod.Ports
	Offers    offersmod.Ports
	Sightings sightingsmod.Ports
}

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	name  string
	ports any
	svc   *discsvc.Svc
}

// New constructs a discovery module. Ingest clients are built from the
// module's config prefix; sibling ports arrive pre-wired
func New(deps modkit.Deps, wires Wires, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("discovery")}, opts...)...)

	// module options live under CORE_DISCOVERY_*
	cfg := deps.Cfg.Prefix("CORE_DISCOVERY_")

	yt := youtube.New(youtube.Config{
		BaseURL:   cfg.MayString("YT_BASE_URL", ""),
		UserAgent: cfg.MayString("USER_AGENT", ""),
		Delay:     cfg.MayDuration("YT_DELAY", 0),
	})
	tr := transcript.New(transcript.Config{
		BaseURL:   cfg.MayString("YT_BASE_URL", ""),
		UserAgent: cfg.MayString("USER_AGENT", ""),
		Lang:      cfg.MayString("TRANSCRIPT_LANG", "en"),
	})
	sb := sponsorblock.New(sponsorblock.Config{
		BaseURL:   cfg.MayString("SPONSORBLOCK_BASE_URL", ""),
		UserAgent: cfg.MayString("USER_AGENT", ""),
	})

	svc := discsvc.New(discsvc.Deps{
		Videos:       &videoSource{c: yt},
		Transcripts:  tr,
		Sponsors:     sb,
		Brands:       wires.Brands.Catalog,
		BrandEnsurer: wires.Brands.Ensurer,
		Creators:     wires.Creators.Ensurer,
		Offers:       wires.Offers.Writer,
		Sightings:    wires.Sightings.Writer,
	}, discsvc.Opts{
		Workers:    cfg.MayInt("WORKERS", 4),
		DefaultMax: cfg.MayInt("MAX_VIDEOS", 20),
		DryRun:     cfg.MayBool("DRY_RUN", false),
	})

	m := &Module{deps: deps, name: b.Name, svc: svc}
	m.ports = Ports{Runner: svc}
	return m
}

// MountRoutes implements modkit.Module; discovery runs from the CLI only
func (m *Module) MountRoutes(httpkit.Router) {}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Service exposes the concrete runner
func (m *Module) Service() *discsvc.Svc { return m.svc }
