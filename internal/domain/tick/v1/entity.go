package v1

import (
	"time"
)

// Tick represents a single tick-by-tick (TBT) event for an instrument.
// Datetime and Ticker are always present; the remaining columns are
// nullable in storage and map to pointers. A nil LTP or LTQ makes the
// tick malformed for aggregation purposes.
type Tick struct {
	Datetime     time.Time
	Ticker       string
	LTP          *float64
	BuyPrice     *float64
	BuyQty       *int64
	SellPrice    *float64
	SellQty      *int64
	LTQ          *int64
	OpenInterest *int64
}

// Filter represents the filter criteria for tick data.
type Filter struct {
	Ticker string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Float64 returns a pointer to v. Convenience for building Tick literals.
func Float64(v float64) *float64 {
	return &v
}

// Int64 returns a pointer to v. Convenience for building Tick literals.
func Int64(v int64) *int64 {
	return &v
}
