package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgerrors "github.com/muhammadchandra19/tick-data-service/pkg/errors"
)

func TestNormalizeIdentity(t *testing.T) {
	testCases := []struct {
		name    string
		symbol  string
		series  string
		want    string
		wantErr bool
	}{
		{name: "equity keeps the bare symbol", symbol: "TCS", series: "EQ", want: "TCS"},
		{name: "derivative series is suffixed and truncated", symbol: "TCS", series: "FUTIDX", want: "TCS.FU"},
		{name: "series is upper-cased before truncation", symbol: "TCS", series: "futstk", want: "TCS.FU"},
		{name: "lowercase eq is still equity", symbol: "TCS", series: "eq", want: "TCS"},
		{name: "short series is used whole", symbol: "TCS", series: "N", want: "TCS.N"},
		{name: "surrounding whitespace is ignored", symbol: " TCS ", series: " EQ ", want: "TCS"},
		{name: "empty symbol fails", symbol: "", series: "EQ", wantErr: true},
		{name: "empty series fails", symbol: "TCS", series: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeIdentity(tc.symbol, tc.series)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.IdentityNormalizationError))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReconcile(t *testing.T) {
	day := time.Date(2022, 4, 4, 0, 0, 0, 0, time.UTC)

	bar := func(ticker string, high, low float64, volume int64) *Bar {
		return &Bar{
			Datetime: day,
			Ticker:   ticker,
			Open:     low,
			High:     high,
			Low:      low,
			Close:    high,
			Volume:   volume,
		}
	}
	ref := func(symbol, series string, high, low float64, volume int64) *ReferenceRow {
		return &ReferenceRow{
			Date:   day,
			Symbol: symbol,
			Series: series,
			Open:   &low,
			High:   &high,
			Low:    &low,
			Close:  &high,
			Volume: &volume,
		}
	}

	t.Run("identical datasets are all clear", func(t *testing.T) {
		report := Reconcile(
			[]*ReferenceRow{ref("TCS", "EQ", 105, 100, 500)},
			[]*Bar{bar("TCS", 105, 100, 500)},
		)

		assert.Equal(t, 0, report.RowCountDifference)
		assert.Equal(t, 0, report.SkippedReferenceRows)
		assert.Nil(t, report.VolumeMismatch)
		assert.Nil(t, report.HighMismatch)
		assert.Nil(t, report.LowMismatch)
	})

	t.Run("volume disagreement is flagged both ways", func(t *testing.T) {
		report := Reconcile(
			[]*ReferenceRow{
				ref("TCS", "EQ", 105, 100, 500),
				ref("INFY", "EQ", 1520, 1500, 100),
			},
			[]*Bar{
				bar("TCS", 105, 100, 499),
				bar("INFY", 1520, 1500, 101),
			},
		)

		assert.NotNil(t, report.VolumeMismatch)
		assert.Equal(t, []string{"volume_bhav", "volume_computed"}, report.VolumeMismatch.Header)
		assert.Len(t, report.VolumeMismatch.Rows, 2)
	})

	t.Run("high check is one-sided", func(t *testing.T) {
		// Reference below computed: the engine saw a print the
		// reference missed, flag it.
		flagged := Reconcile(
			[]*ReferenceRow{ref("TCS", "EQ", 105, 100, 500)},
			[]*Bar{bar("TCS", 107, 100, 500)},
		)
		assert.NotNil(t, flagged.HighMismatch)
		assert.Len(t, flagged.HighMismatch.Rows, 1)
		assert.Equal(t, 105.0, *flagged.HighMismatch.Rows[0].Reference)
		assert.Equal(t, 107.0, *flagged.HighMismatch.Rows[0].Computed)

		// Reference above computed: the reference covers trades the
		// tick feed never carried, not an error.
		clear := Reconcile(
			[]*ReferenceRow{ref("TCS", "EQ", 107, 100, 500)},
			[]*Bar{bar("TCS", 105, 100, 500)},
		)
		assert.Nil(t, clear.HighMismatch)
	})

	t.Run("low check is one-sided", func(t *testing.T) {
		flagged := Reconcile(
			[]*ReferenceRow{ref("TCS", "EQ", 105, 100, 500)},
			[]*Bar{bar("TCS", 105, 98, 500)},
		)
		assert.NotNil(t, flagged.LowMismatch)
		assert.Len(t, flagged.LowMismatch.Rows, 1)

		clear := Reconcile(
			[]*ReferenceRow{ref("TCS", "EQ", 105, 98, 500)},
			[]*Bar{bar("TCS", 105, 100, 500)},
		)
		assert.Nil(t, clear.LowMismatch)
	})

	t.Run("rows missing on one side surface as volume mismatches", func(t *testing.T) {
		report := Reconcile(
			[]*ReferenceRow{ref("ONLYREF", "EQ", 10, 9, 100)},
			[]*Bar{bar("ONLYCOMP", 20, 19, 200)},
		)

		assert.Equal(t, 0, report.RowCountDifference)
		assert.NotNil(t, report.VolumeMismatch)
		assert.Len(t, report.VolumeMismatch.Rows, 2)

		// Sorted by ticker within the day.
		assert.Equal(t, "ONLYCOMP", report.VolumeMismatch.Rows[0].Ticker)
		assert.Nil(t, report.VolumeMismatch.Rows[0].Reference)
		assert.Equal(t, 200.0, *report.VolumeMismatch.Rows[0].Computed)

		assert.Equal(t, "ONLYREF", report.VolumeMismatch.Rows[1].Ticker)
		assert.Equal(t, 100.0, *report.VolumeMismatch.Rows[1].Reference)
		assert.Nil(t, report.VolumeMismatch.Rows[1].Computed)

		// One-sided rows never trip the price checks.
		assert.Nil(t, report.HighMismatch)
		assert.Nil(t, report.LowMismatch)
	})

	t.Run("absent volumes on both sides are equal", func(t *testing.T) {
		row := ref("TCS", "EQ", 105, 100, 0)
		row.Volume = nil

		// Against a missing computed row both volumes are absent, so the
		// absence shows up in the row count, not the value table.
		report := Reconcile(
			[]*ReferenceRow{row},
			[]*Bar{},
		)

		assert.Equal(t, 1, report.RowCountDifference)
		assert.Nil(t, report.VolumeMismatch)

		// Against a computed row the absent reference volume mismatches.
		report = Reconcile(
			[]*ReferenceRow{row},
			[]*Bar{bar("TCS", 105, 100, 500)},
		)
		assert.NotNil(t, report.VolumeMismatch)
		assert.Nil(t, report.VolumeMismatch.Rows[0].Reference)
	})

	t.Run("row count difference tracks both directions", func(t *testing.T) {
		more := Reconcile(
			[]*ReferenceRow{
				ref("A", "EQ", 1, 1, 1),
				ref("B", "EQ", 1, 1, 1),
			},
			[]*Bar{bar("A", 1, 1, 1)},
		)
		assert.Equal(t, 1, more.RowCountDifference)

		fewer := Reconcile(
			[]*ReferenceRow{ref("A", "EQ", 1, 1, 1)},
			[]*Bar{
				bar("A", 1, 1, 1),
				bar("B", 1, 1, 1),
			},
		)
		assert.Equal(t, -1, fewer.RowCountDifference)
	})

	t.Run("reference rows without an identity are skipped and counted", func(t *testing.T) {
		report := Reconcile(
			[]*ReferenceRow{
				ref("TCS", "EQ", 105, 100, 500),
				ref("", "EQ", 1, 1, 1),
			},
			[]*Bar{bar("TCS", 105, 100, 500)},
		)

		assert.Equal(t, 1, report.SkippedReferenceRows)
		assert.Equal(t, 0, report.RowCountDifference)
		assert.Nil(t, report.VolumeMismatch)
	})

	t.Run("derivative rows join against suffixed tickers", func(t *testing.T) {
		report := Reconcile(
			[]*ReferenceRow{ref("NIFTY", "FUTIDX", 18115, 17890, 0)},
			[]*Bar{bar("NIFTY.FU", 18115, 17890, 0)},
		)

		assert.Equal(t, 0, report.RowCountDifference)
		assert.Nil(t, report.VolumeMismatch)
	})

	t.Run("mismatch rows come out ordered by datetime then ticker", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		refB := ref("B", "EQ", 1, 1, 10)
		refA := ref("A", "EQ", 1, 1, 10)
		refA.Date = nextDay

		report := Reconcile([]*ReferenceRow{refA, refB}, []*Bar{})

		assert.Len(t, report.VolumeMismatch.Rows, 2)
		assert.Equal(t, "B", report.VolumeMismatch.Rows[0].Ticker)
		assert.Equal(t, day, report.VolumeMismatch.Rows[0].Datetime)
		assert.Equal(t, "A", report.VolumeMismatch.Rows[1].Ticker)
		assert.Equal(t, nextDay, report.VolumeMismatch.Rows[1].Datetime)
	})
}
