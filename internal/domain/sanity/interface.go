package sanity

import (
	"context"
	"time"

	"github.com/muhammadchandra19/tick-data-service/internal/engine"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Usecase is the interface for the sanity check usecase.
type Usecase interface {
	RunBhavChecks(ctx context.Context, date time.Time) (*engine.MismatchReport, error)
}

// ReferenceSource provides the end-of-day reference rows for a trading
// date, raw as published. Identity normalization happens during
// reconciliation, not here.
type ReferenceSource interface {
	GetReferenceBars(ctx context.Context, date time.Time) ([]*engine.ReferenceRow, error)
}
