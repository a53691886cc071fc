package engine

import (
	"time"
)

// Snapshot is one resampled tick row: the state of an instrument at the
// end of a fixed-width interval. Quote-side fields and open interest
// carry the values of the temporally-last tick in the bucket; LTQ is the
// total traded quantity over the bucket.
type Snapshot struct {
	Datetime     time.Time `json:"datetime"`
	Ticker       string    `json:"ticker"`
	LTP          float64   `json:"ltp"`
	LTQ          int64     `json:"ltq"`
	BuyPrice     float64   `json:"buy_price"`
	BuyQty       int64     `json:"buy_qty"`
	SellPrice    float64   `json:"sell_price"`
	SellQty      int64     `json:"sell_qty"`
	OpenInterest int64     `json:"open_interest"`
}

// Bar is one OHLCV row for an instrument over a fixed-width interval.
// For every materialized bar, Low <= Open <= High and Low <= Close <= High.
type Bar struct {
	Datetime time.Time `json:"datetime"`
	Ticker   string    `json:"ticker"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   int64     `json:"volume"`
}

// ReferenceRow is one end-of-day bar from the authoritative bhavcopy
// feed, still keyed by its raw (symbol, series) pair. Values are
// pointers because reference files may carry empty cells.
type ReferenceRow struct {
	Date   time.Time `json:"date"`
	Symbol string    `json:"symbol"`
	Series string    `json:"series"`
	Open   *float64  `json:"open"`
	High   *float64  `json:"high"`
	Low    *float64  `json:"low"`
	Close  *float64  `json:"close"`
	Volume *int64    `json:"volume"`
}

// MismatchRow is one disagreement between the reference and computed
// datasets for a (datetime, ticker) key. A nil value means the row was
// missing on that side of the join.
type MismatchRow struct {
	Datetime  time.Time `json:"datetime"`
	Ticker    string    `json:"ticker"`
	Reference *float64  `json:"reference_value"`
	Computed  *float64  `json:"computed_value"`
}

// MismatchTable is a non-empty set of mismatch rows plus the names of the
// two value columns, sorted by (datetime, ticker).
type MismatchTable struct {
	Header []string      `json:"header"`
	Rows   []MismatchRow `json:"rows"`
}

// MismatchReport is the result of reconciling a computed bar dataset
// against the reference feed. Mismatch tables are nil when empty, so an
// all-clear report serializes to just the row counts.
type MismatchReport struct {
	RowCountDifference   int            `json:"row_count_difference"`
	SkippedReferenceRows int            `json:"skipped_reference_rows,omitempty"`
	VolumeMismatch       *MismatchTable `json:"volume_mismatch,omitempty"`
	HighMismatch         *MismatchTable `json:"high_mismatch,omitempty"`
	LowMismatch          *MismatchTable `json:"low_mismatch,omitempty"`
}
