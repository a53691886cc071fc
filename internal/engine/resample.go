package engine

import (
	"fmt"
	"sort"
	"time"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/interval"
)

// Resample buckets irregular ticks into fixed-width interval snapshots,
// one per non-empty (ticker, bucket) pair. Input order does not matter:
// ticks are stable-sorted by (ticker, datetime) first, so "last" is
// well-defined and ties on the timestamp are broken by arrival order.
//
// Per bucket: LTP, quote-side fields and open interest take the value of
// the temporally-last tick carrying that field; LTQ is summed. A bucket
// that ends up without a value for any snapshot field is dropped rather
// than zero-filled, and empty buckets are never materialized.
func Resample(ticks []*tickv1.Tick, freq interval.Frequency, opts ...Option) ([]*Snapshot, error) {
	if err := freq.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	sorted := make([]*tickv1.Tick, len(ticks))
	copy(sorted, ticks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Ticker != sorted[j].Ticker {
			return sorted[i].Ticker < sorted[j].Ticker
		}
		return sorted[i].Datetime.Before(sorted[j].Datetime)
	})

	out := []*Snapshot{}
	var agg *snapshotAgg

	flush := func() {
		if agg == nil {
			return
		}
		if snap, ok := agg.snapshot(); ok {
			out = append(out, snap)
		}
		agg = nil
	}

	for _, t := range sorted {
		if !tickComplete(t) {
			if cfg.strictTicks {
				return nil, malformedTick(t)
			}
			continue
		}

		bucket := freq.BucketTime(t.Datetime)
		if agg == nil || agg.ticker != t.Ticker || !agg.bucket.Equal(bucket) {
			flush()
			agg = &snapshotAgg{ticker: t.Ticker, bucket: bucket}
		}
		agg.add(t)
	}
	flush()

	return out, nil
}

// tickComplete reports whether a tick carries the fields every
// aggregation needs. Quote-side fields and open interest may be absent.
func tickComplete(t *tickv1.Tick) bool {
	return t.Ticker != "" && t.LTP != nil && t.LTQ != nil
}

func malformedTick(t *tickv1.Tick) error {
	return errors.NewErrorDetails(
		fmt.Sprintf("tick for %q at %s is missing required fields",
			t.Ticker, t.Datetime.Format(time.RFC3339)),
		errors.MalformedTickError,
		"tick",
	)
}

// snapshotAgg accumulates one (ticker, bucket) snapshot. Last-value
// fields keep the latest non-nil observation so a tick with a missing
// quote side does not erase an earlier one.
type snapshotAgg struct {
	ticker string
	bucket time.Time

	ltp          *float64
	ltqTotal     int64
	buyPrice     *float64
	buyQty       *int64
	sellPrice    *float64
	sellQty      *int64
	openInterest *int64
}

func (a *snapshotAgg) add(t *tickv1.Tick) {
	a.ltp = t.LTP
	a.ltqTotal += *t.LTQ

	if t.BuyPrice != nil {
		a.buyPrice = t.BuyPrice
	}
	if t.BuyQty != nil {
		a.buyQty = t.BuyQty
	}
	if t.SellPrice != nil {
		a.sellPrice = t.SellPrice
	}
	if t.SellQty != nil {
		a.sellQty = t.SellQty
	}
	if t.OpenInterest != nil {
		a.openInterest = t.OpenInterest
	}
}

// snapshot materializes the bucket, or reports false when any snapshot
// field never got a value (the drop-incomplete policy).
func (a *snapshotAgg) snapshot() (*Snapshot, bool) {
	if a.ltp == nil || a.buyPrice == nil || a.buyQty == nil || a.sellPrice == nil || a.sellQty == nil || a.openInterest == nil {
		return nil, false
	}

	return &Snapshot{
		Datetime:     a.bucket,
		Ticker:       a.ticker,
		LTP:          *a.ltp,
		LTQ:          a.ltqTotal,
		BuyPrice:     *a.buyPrice,
		BuyQty:       *a.buyQty,
		SellPrice:    *a.sellPrice,
		SellQty:      *a.sellQty,
		OpenInterest: *a.openInterest,
	}, true
}
