package bootstrap

import (
	"github.com/muhammadchandra19/tick-data-service/internal/domain/sanity"
	"github.com/muhammadchandra19/tick-data-service/internal/engine"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
	"github.com/muhammadchandra19/tick-data-service/pkg/questdb"
)

// Bootstrap is the bootstrap for the tick data service.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	Repository Repository

	QuestDB         questdb.QuestDBClient
	ReferenceSource sanity.ReferenceSource

	engineOpts []engine.Option
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	QuestDB         questdb.QuestDBClient
	Logger          logger.Interface
	ReferenceSource sanity.ReferenceSource

	// StrictTicks makes every aggregation fail on malformed ticks
	// instead of dropping them.
	StrictTicks bool
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.QuestDB = config.QuestDB
	b.Logger = config.Logger
	b.ReferenceSource = config.ReferenceSource

	if config.StrictTicks {
		b.engineOpts = append(b.engineOpts, engine.WithStrictTicks())
	}

	b.registerRepository()
	b.registerUsecase()

	return *b
}
