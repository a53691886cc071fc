package marketdata

import (
	"context"
	"time"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/internal/engine"
	"github.com/muhammadchandra19/tick-data-service/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/interval"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
	"github.com/muhammadchandra19/tick-data-service/pkg/util"
)

// Usecase is the usecase for aggregated market data. It fetches raw
// ticks from storage and runs them through the aggregation engine.
type Usecase struct {
	tickRepository tick.TickRepository
	logger         logger.Interface
	engineOpts     []engine.Option
}

// NewUsecase creates a new market data usecase. Engine options apply to
// every aggregation run through this usecase.
func NewUsecase(tickRepository tick.TickRepository, logger logger.Interface, engineOpts ...engine.Option) *Usecase {
	return &Usecase{
		tickRepository: tickRepository,
		logger:         logger,
		engineOpts:     engineOpts,
	}
}

// GetResampledTicks resamples the ticks of a ticker over a date range
// into last-traded snapshots at the given frequency.
func (u *Usecase) GetResampledTicks(ctx context.Context, ticker string, dateRange string, freq interval.Frequency) ([]*engine.Snapshot, error) {
	ticks, err := u.fetchTicks(ctx, ticker, dateRange)
	if err != nil {
		return nil, err
	}

	snapshots, err := engine.Resample(ticks, freq, u.engineOpts...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return snapshots, nil
}

// GetOHLCV aggregates the ticks of a ticker over a date range into
// OHLCV bars at the given frequency.
func (u *Usecase) GetOHLCV(ctx context.Context, ticker string, dateRange string, freq interval.Frequency) ([]*engine.Bar, error) {
	ticks, err := u.fetchTicks(ctx, ticker, dateRange)
	if err != nil {
		return nil, err
	}

	bars, err := engine.BuildBars(ticks, freq, u.engineOpts...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return bars, nil
}

func (u *Usecase) fetchTicks(ctx context.Context, ticker string, dateRange string) ([]*tickv1.Tick, error) {
	from, to, err := util.ParseDateRange(dateRange, time.Now())
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	ticks, err := u.tickRepository.GetByFilter(ctx, tickv1.Filter{
		Ticker: ticker,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return ticks, nil
}
