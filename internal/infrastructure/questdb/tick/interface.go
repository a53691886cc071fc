package tick

import (
	"context"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
)

// TickRepository is the storage capability the rest of the service
// depends on. The aggregation engine itself never touches storage; its
// callers fetch through this interface, which makes the backend
// substitutable with an in-memory fake in tests.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type TickRepository interface {
	EnsureSchema(ctx context.Context) error
	Store(ctx context.Context, tick *tickv1.Tick) error
	StoreBatch(ctx context.Context, ticks []*tickv1.Tick) error
	GetByFilter(ctx context.Context, filter tickv1.Filter) ([]*tickv1.Tick, error)
	GetLatestByTicker(ctx context.Context, ticker string) (*tickv1.Tick, error)
}
