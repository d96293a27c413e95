package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"backr/internal/modkit"
	"backr/internal/modkit/module"
	"backr/internal/platform/config"
	"backr/internal/platform/logger"
	"backr/internal/platform/store"

	brandsmod "backr/internal/services/brands/module"
	creatorsmod "backr/internal/services/creators/module"
	discdom "backr/internal/services/discovery/domain"
	discmod "backr/internal/services/discovery/module"
	offersmod "backr/internal/services/offers/module"
	sightingsmod "backr/internal/services/sightings/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")

	l := logger.Get()
	st, err := store.Open(context.Background(), store.Config{
		AppName: "backr",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
		CH: store.CHConfig{
			Enabled:    chCfg.MayBool("ENABLED", true),
			URL:        chCfg.MayString("DBURL", ""),
			ClientName: "backr",
			ClientTag:  "discover",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fStrategy = flag.String("strategy", "search", "video selection: search | sponsored | channel")
		fQuery    = flag.String("query", "", "search query (search strategy)")
		fChannel  = flag.String("channel", "", "channel id (channel strategy)")
		fMax      = flag.Int("max", 0, "max videos to scan, 0 uses CORE_DISCOVERY_MAX_VIDEOS")
		fWorkers  = flag.Int("workers", 0, "concurrent video pipelines")
		fDryRun   = flag.Bool("dry-run", false, "extract and match but persist nothing")
	)
	flag.Parse()

	// surface overrides to the module's config path
	if *fWorkers > 0 {
		mustSetEnv("CORE_DISCOVERY_WORKERS", strconv.Itoa(*fWorkers))
	}
	if *fDryRun {
		mustSetEnv("CORE_DISCOVERY_DRY_RUN", "1")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		CH:  st.CH,
		Log: *l,
	}

	brands := brandsmod.New(deps)
	creators := creatorsmod.New(deps)
	offers := offersmod.New(deps)
	sightings := sightingsmod.New(deps)

	disc := discmod.New(deps, discmod.Wires{
		Brands:    module.MustPortsOf[brandsmod.Ports](brands),
		Creators:  module.MustPortsOf[creatorsmod.Ports](creators),
		Offers:    module.MustPortsOf[offersmod.Ports](offers),
		Sightings: module.MustPortsOf[sightingsmod.Ports](sightings),
	})

	for _, m := range []module.Module{brands, creators, offers, sightings, disc} {
		module.Register(m.Name(), m.Ports())
	}

	runner := disc.Ports().(discmod.Ports).Runner
	stats, err := runner.Run(context.Background(), discdom.RunInput{
		Strategy:  discdom.Strategy(*fStrategy),
		Query:     *fQuery,
		ChannelID: *fChannel,
		Max:       *fMax,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("discovery run failed")
	}

	l.Info().
		Int("videos_scanned", stats.VideosScanned).
		Int("codes_found", stats.CodesFound).
		Int("offers_created", stats.OffersCreated).
		Int("offers_updated", stats.OffersUpdated).
		Int("brands_matched", stats.BrandsMatched).
		Int("sponsored", stats.Sponsored).
		Int("skipped", stats.Skipped).
		Msg("discovery run complete")
}
