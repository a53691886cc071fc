package sanity

import (
	"context"
	"time"

	"github.com/muhammadchandra19/tick-data-service/internal/domain/sanity"
	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/internal/engine"
	"github.com/muhammadchandra19/tick-data-service/internal/infrastructure/questdb/tick"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/interval"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
)

// Usecase is the usecase for end-of-day sanity checks.
type Usecase struct {
	tickRepository  tick.TickRepository
	referenceSource sanity.ReferenceSource
	logger          logger.Interface
}

// NewUsecase creates a new sanity check usecase.
func NewUsecase(tickRepository tick.TickRepository, referenceSource sanity.ReferenceSource, logger logger.Interface) *Usecase {
	return &Usecase{
		tickRepository:  tickRepository,
		referenceSource: referenceSource,
		logger:          logger,
	}
}

// RunBhavChecks reconciles the daily bars computed from stored ticks
// against the exchange reference data for a trading date.
func (u *Usecase) RunBhavChecks(ctx context.Context, date time.Time) (*engine.MismatchReport, error) {
	reference, err := u.referenceSource.GetReferenceBars(ctx, date)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1).Add(-time.Nanosecond)

	ticks, err := u.tickRepository.GetByFilter(ctx, tickv1.Filter{
		From: &from,
		To:   &to,
	})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	bars, err := engine.BuildBars(ticks, interval.Day)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	report := engine.Reconcile(reference, bars)

	u.logger.InfoContext(ctx, "bhav check finished",
		logger.NewField("date", from.Format("2006-01-02")),
		logger.NewField("reference_rows", len(reference)),
		logger.NewField("computed_rows", len(bars)),
		logger.NewField("row_count_difference", report.RowCountDifference),
	)

	return report, nil
}
