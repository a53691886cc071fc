package tick

import (
	"context"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
)

// Usecase is the interface for the tick usecase.
type Usecase interface {
	GetLatestTick(ctx context.Context, ticker string) (*tickv1.Tick, error)
	GetTicks(ctx context.Context, filter tickv1.Filter) ([]*tickv1.Tick, error)
	StoreTick(ctx context.Context, tick *tickv1.Tick) error
	StoreTicks(ctx context.Context, ticks []*tickv1.Tick) error
}
