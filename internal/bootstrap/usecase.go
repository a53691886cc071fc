package bootstrap

import (
	marketdataUc "github.com/muhammadchandra19/tick-data-service/internal/usecase/marketdata"
	sanityUc "github.com/muhammadchandra19/tick-data-service/internal/usecase/sanity"
	tickUc "github.com/muhammadchandra19/tick-data-service/internal/usecase/tick"

	marketdataDomain "github.com/muhammadchandra19/tick-data-service/internal/domain/marketdata"
	sanityDomain "github.com/muhammadchandra19/tick-data-service/internal/domain/sanity"
	tickDomain "github.com/muhammadchandra19/tick-data-service/internal/domain/tick"
)

// Usecase is the usecase for the tick data service.
type Usecase struct {
	TickUsecase       tickDomain.Usecase
	MarketDataUsecase marketdataDomain.Usecase
	SanityUsecase     sanityDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.TickUsecase = tickUc.NewUsecase(b.Repository.TickRepository, b.Logger)
	b.Usecase.MarketDataUsecase = marketdataUc.NewUsecase(b.Repository.TickRepository, b.Logger, b.engineOpts...)
	b.Usecase.SanityUsecase = sanityUc.NewUsecase(b.Repository.TickRepository, b.ReferenceSource, b.Logger)
}
