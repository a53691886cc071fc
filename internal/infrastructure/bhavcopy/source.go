package bhavcopy

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadchandra19/tick-data-service/internal/engine"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
)

// Bhavcopy file naming and layout as published by the exchange. The
// TIMESTAMP column carries the trading date, one row per (symbol,
// series).
const (
	fileDateLayout = "02Jan2006"
	rowDateLayout  = "02-Jan-2006"
)

// Source reads end-of-day reference bars from extracted bhavcopy CSV
// files in a local directory, one file per trading date.
type Source struct {
	dir    string
	logger logger.Interface
}

// NewSource creates a bhavcopy source reading from dir.
func NewSource(dir string, logger logger.Interface) *Source {
	return &Source{dir: dir, logger: logger}
}

// GetReferenceBars reads the bhavcopy for a trading date. A missing or
// unreadable file surfaces as a reconciliation_source_unavailable error
// so callers can tell "no reference data" from a broken check.
func (s *Source) GetReferenceBars(ctx context.Context, date time.Time) ([]*engine.ReferenceRow, error) {
	path := filepath.Join(s.dir, bhavcopyFilename(date))

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("bhavcopy %s: %v", path, err),
			errors.ReconciliationSourceUnavailable,
			"date",
		)
	}
	defer f.Close()

	rows, err := parseBhavcopy(f)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("bhavcopy %s: %v", path, err),
			errors.ReconciliationSourceUnavailable,
			"date",
		)
	}

	s.logger.InfoContext(ctx, "bhavcopy loaded",
		logger.NewField("path", path),
		logger.NewField("rows", len(rows)),
	)

	return rows, nil
}

// bhavcopyFilename derives the published file name for a trading date,
// e.g. EODSNAPSHOT_04APR2022bhav.csv.
func bhavcopyFilename(date time.Time) string {
	return fmt.Sprintf("EODSNAPSHOT_%sbhav.csv", strings.ToUpper(date.Format(fileDateLayout)))
}

func parseBhavcopy(r io.Reader) ([]*engine.ReferenceRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Some published files pad rows with a trailing empty column.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"symbol", "series", "timestamp", "open", "high", "low", "close", "tottrdqty"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var rows []*engine.ReferenceRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		date, err := time.ParseInLocation(rowDateLayout, field(record, cols["timestamp"]), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp in row %v: %w", record, err)
		}

		rows = append(rows, &engine.ReferenceRow{
			Date:   date,
			Symbol: field(record, cols["symbol"]),
			Series: field(record, cols["series"]),
			Open:   floatField(record, cols["open"]),
			High:   floatField(record, cols["high"]),
			Low:    floatField(record, cols["low"]),
			Close:  floatField(record, cols["close"]),
			Volume: intField(record, cols["tottrdqty"]),
		})
	}

	return rows, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// floatField parses a numeric cell, nil when the cell is empty or not a
// number. Reference files leave cells blank for halted instruments.
func floatField(record []string, idx int) *float64 {
	raw := field(record, idx)
	if raw == "" || raw == "-" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intField(record []string, idx int) *int64 {
	raw := field(record, idx)
	if raw == "" || raw == "-" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
