package engine

import (
	"sort"
	"time"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/pkg/interval"
)

// BuildBars aggregates ticks into OHLCV bars, one per non-empty
// (ticker, bucket) pair. Instruments are grouped in first-seen order and
// resampled independently; within a group, bars come out with buckets
// ascending. Empty buckets are omitted, never emitted as zero-volume
// synthetic bars.
//
// Per bucket: open is the LTP of the earliest tick, close the latest,
// high/low the extrema, volume the summed LTQ. Ticks missing LTP or LTQ
// are dropped by default; WithStrictTicks turns them into a failure.
func BuildBars(ticks []*tickv1.Tick, freq interval.Frequency, opts ...Option) ([]*Bar, error) {
	if err := freq.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	order := []string{}
	groups := map[string][]*tickv1.Tick{}
	for _, t := range ticks {
		if !tickComplete(t) {
			if cfg.strictTicks {
				return nil, malformedTick(t)
			}
			continue
		}

		if _, ok := groups[t.Ticker]; !ok {
			order = append(order, t.Ticker)
		}
		groups[t.Ticker] = append(groups[t.Ticker], t)
	}

	out := []*Bar{}
	for _, ticker := range order {
		out = append(out, buildTickerBars(ticker, groups[ticker], freq)...)
	}

	return out, nil
}

func buildTickerBars(ticker string, ticks []*tickv1.Tick, freq interval.Frequency) []*Bar {
	sort.SliceStable(ticks, func(i, j int) bool {
		return ticks[i].Datetime.Before(ticks[j].Datetime)
	})

	var bars []*Bar
	var agg *barAgg

	flush := func() {
		if agg != nil {
			bars = append(bars, agg.bar())
			agg = nil
		}
	}

	for _, t := range ticks {
		bucket := freq.BucketTime(t.Datetime)
		if agg == nil || !agg.bucket.Equal(bucket) {
			flush()
			agg = &barAgg{
				ticker: ticker,
				bucket: bucket,
				open:   *t.LTP,
				high:   *t.LTP,
				low:    *t.LTP,
			}
		}
		agg.add(t)
	}
	flush()

	return bars
}

// barAgg accumulates one (ticker, bucket) bar. Open/high/low are seeded
// from the first tick, so the OHLC bounds invariant holds by
// construction: open and close are members of the same set whose extrema
// are high and low.
type barAgg struct {
	ticker string
	bucket time.Time

	open   float64
	high   float64
	low    float64
	close  float64
	volume int64
}

func (a *barAgg) add(t *tickv1.Tick) {
	price := *t.LTP
	if price > a.high {
		a.high = price
	}
	if price < a.low {
		a.low = price
	}
	a.close = price
	a.volume += *t.LTQ
}

func (a *barAgg) bar() *Bar {
	return &Bar{
		Datetime: a.bucket,
		Ticker:   a.ticker,
		Open:     a.open,
		High:     a.high,
		Low:      a.low,
		Close:    a.close,
		Volume:   a.volume,
	}
}
