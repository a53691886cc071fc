package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
)

// Equity series code in the reference feed. Equity rows keep their bare
// symbol; every other series gets a suffix so derivatives sharing a base
// symbol with the equity stay distinct.
const equitySeries = "EQ"

// NormalizeIdentity derives the canonical ticker from a reference
// (symbol, series) pair: the bare symbol for the EQ series, otherwise
// symbol + "." + the first two characters of the uppercased series.
func NormalizeIdentity(symbol, series string) (string, error) {
	symbol = strings.TrimSpace(symbol)
	series = strings.ToUpper(strings.TrimSpace(series))

	if symbol == "" || series == "" {
		return "", errors.NewErrorDetails(
			fmt.Sprintf("cannot derive ticker from symbol %q series %q", symbol, series),
			errors.IdentityNormalizationError,
			"symbol",
		)
	}

	if series == equitySeries {
		return symbol, nil
	}
	if len(series) > 2 {
		series = series[:2]
	}
	return symbol + "." + series, nil
}

// Reconcile diffs a reference bar dataset against a computed one for the
// same calendar date and classifies the disagreements.
//
// Reference rows are first normalized to canonical tickers; rows whose
// identity cannot be derived are excluded from the join and counted in
// SkippedReferenceRows so RowCountDifference stays meaningful. The two
// sides are then full-outer-joined on (datetime, ticker): rows present
// on only one side appear with the other side absent, which surfaces
// missing-from-reference and missing-from-computed cases, not just value
// disagreements.
//
// Volume rows mismatch when the two sides differ, where an absent side
// mismatches any present value and absent-vs-absent is equal (pure
// absence stays out of the value tables). High rows are flagged only
// when the reference understates the computed high, low rows only when
// the reference overstates the computed low; the reference is trusted as
// ground truth for the opposite directions, and rows absent on either
// side are never flagged.
//
// RowCountDifference is the pre-join reference row count (after
// normalization) minus the computed row count.
func Reconcile(reference []*ReferenceRow, computed []*Bar) *MismatchReport {
	type joined struct {
		datetime time.Time
		ticker   string
		ref      *ReferenceRow
		comp     *Bar
	}
	type rowKey struct {
		unix   int64
		ticker string
	}

	join := map[rowKey]*joined{}
	keys := []rowKey{}
	upsert := func(ts time.Time, ticker string) *joined {
		k := rowKey{ts.Unix(), ticker}
		if row, ok := join[k]; ok {
			return row
		}
		row := &joined{datetime: ts, ticker: ticker}
		join[k] = row
		keys = append(keys, k)
		return row
	}

	skipped := 0
	refCount := 0
	for _, r := range reference {
		ticker, err := NormalizeIdentity(r.Symbol, r.Series)
		if err != nil {
			skipped++
			continue
		}
		refCount++
		upsert(r.Date, ticker).ref = r
	}
	for _, b := range computed {
		upsert(b.Datetime, b.Ticker).comp = b
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].unix != keys[j].unix {
			return keys[i].unix < keys[j].unix
		}
		return keys[i].ticker < keys[j].ticker
	})

	var volume, high, low []MismatchRow
	for _, k := range keys {
		row := join[k]

		refVol, refHigh, refLow := refValues(row.ref)
		compVol, compHigh, compLow := compValues(row.comp)

		if !floatPtrEqual(refVol, compVol) {
			volume = append(volume, MismatchRow{row.datetime, row.ticker, refVol, compVol})
		}
		if refHigh != nil && compHigh != nil && *refHigh < *compHigh {
			high = append(high, MismatchRow{row.datetime, row.ticker, refHigh, compHigh})
		}
		if refLow != nil && compLow != nil && *refLow > *compLow {
			low = append(low, MismatchRow{row.datetime, row.ticker, refLow, compLow})
		}
	}

	return &MismatchReport{
		RowCountDifference:   refCount - len(computed),
		SkippedReferenceRows: skipped,
		VolumeMismatch:       newMismatchTable("volume", volume),
		HighMismatch:         newMismatchTable("high", high),
		LowMismatch:          newMismatchTable("low", low),
	}
}

func refValues(r *ReferenceRow) (vol, high, low *float64) {
	if r == nil {
		return nil, nil, nil
	}
	if r.Volume != nil {
		v := float64(*r.Volume)
		vol = &v
	}
	return vol, r.High, r.Low
}

func compValues(b *Bar) (vol, high, low *float64) {
	if b == nil {
		return nil, nil, nil
	}
	v := float64(b.Volume)
	return &v, &b.High, &b.Low
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func newMismatchTable(field string, rows []MismatchRow) *MismatchTable {
	if len(rows) == 0 {
		return nil
	}
	return &MismatchTable{
		Header: []string{field + "_bhav", field + "_computed"},
		Rows:   rows,
	}
}
