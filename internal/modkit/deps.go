package modkit

import (
	"backr/internal/modkit/repokit"
	"backr/internal/platform/config"
	"backr/internal/platform/logger"
	"backr/internal/platform/store"
)

// Deps holds core dependencies passed to modules.
// This is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
