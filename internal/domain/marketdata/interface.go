package marketdata

import (
	"context"

	"github.com/muhammadchandra19/tick-data-service/internal/engine"
	"github.com/muhammadchandra19/tick-data-service/pkg/interval"
)

// Usecase is the interface for the market data usecase. Date ranges use
// the "start:end" form where either side may be omitted and a bare date
// means that single day.
type Usecase interface {
	GetResampledTicks(ctx context.Context, ticker string, dateRange string, freq interval.Frequency) ([]*engine.Snapshot, error)
	GetOHLCV(ctx context.Context, ticker string, dateRange string, freq interval.Frequency) ([]*engine.Bar, error)
}
