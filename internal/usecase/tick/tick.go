package tick

import (
	"context"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
)

// Usecase is the usecase for the tick.
type Usecase struct {
	tickRepository tick.TickRepository
	logger         logger.Interface
}

// NewUsecase creates a new tick usecase.
func NewUsecase(tickRepository tick.TickRepository, logger logger.Interface) *Usecase {
	return &Usecase{tickRepository: tickRepository, logger: logger}
}

// GetLatestTick gets the latest tick for a given ticker.
func (u *Usecase) GetLatestTick(ctx context.Context, ticker string) (*tickv1.Tick, error) {
	tick, err := u.tickRepository.GetLatestByTicker(ctx, ticker)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return tick, nil
}

// GetTicks gets the ticks for a given filter.
func (u *Usecase) GetTicks(ctx context.Context, filter tickv1.Filter) ([]*tickv1.Tick, error) {
	ticks, err := u.tickRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return ticks, nil
}

// StoreTick stores a tick.
func (u *Usecase) StoreTick(ctx context.Context, tick *tickv1.Tick) error {
	err := u.tickRepository.Store(ctx, tick)
	if err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}

// StoreTicks stores a batch of ticks.
func (u *Usecase) StoreTicks(ctx context.Context, ticks []*tickv1.Tick) error {
	err := u.tickRepository.StoreBatch(ctx, ticks)
	if err != nil {
		return errors.TracerFromError(err)
	}
	return nil
}
