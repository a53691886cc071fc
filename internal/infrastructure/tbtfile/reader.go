package tbtfile

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

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/pkg/errors"
	"github.com/muhammadchandra19/tick-data-service/pkg/logger"
)

// Tick-by-tick dump layout: one directory per trading date, one CSV per
// instrument, with split date and time columns and tickers suffixed with
// the exchange segment.
const (
	dirDateLayout    = "02012006"
	tickTimeLayout   = "02/01/2006 15:04:05"
	exchangeSuffix   = ".NSE"
	tickerFileSuffix = ".csv"
)

// Reader reads raw tick-by-tick CSV dumps from a local directory tree.
type Reader struct {
	dir    string
	logger logger.Interface
}

// NewReader creates a tick dump reader rooted at dir.
func NewReader(dir string, logger logger.Interface) *Reader {
	return &Reader{dir: dir, logger: logger}
}

// ReadDate reads every instrument file of a trading date's dump
// directory, e.g. STOCK_TICK_04042022/. Files that are not CSV are
// ignored. Missing dump directories surface as not-found errors so the
// ingest CLI can report them cleanly.
func (r *Reader) ReadDate(ctx context.Context, date time.Time) ([]*tickv1.Tick, error) {
	dir := filepath.Join(r.dir, fmt.Sprintf("STOCK_TICK_%s", date.Format(dirDateLayout)))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("tick dump %s: %v", dir, err),
			errors.GeneralNotFoundError,
			"date",
		)
	}

	var ticks []*tickv1.Tick
	files := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), tickerFileSuffix) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		fileTicks, err := readTickerFile(path)
		if err != nil {
			return nil, fmt.Errorf("tick dump %s: %w", path, err)
		}
		ticks = append(ticks, fileTicks...)
		files++
	}

	r.logger.InfoContext(ctx, "tick dump loaded",
		logger.NewField("dir", dir),
		logger.NewField("files", files),
		logger.NewField("ticks", len(ticks)),
	)

	return ticks, nil
}

func readTickerFile(path string) ([]*tickv1.Tick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "time", "ticker", "ltp", "ltq"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var ticks []*tickv1.Tick
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		datetime, err := time.ParseInLocation(
			tickTimeLayout,
			field(record, cols["date"])+" "+field(record, cols["time"]),
			time.UTC,
		)
		if err != nil {
			return nil, fmt.Errorf("bad datetime in row %v: %w", record, err)
		}

		ticks = append(ticks, &tickv1.Tick{
			Datetime:     datetime,
			Ticker:       strings.TrimSuffix(field(record, cols["ticker"]), exchangeSuffix),
			LTP:          floatField(record, cols["ltp"]),
			BuyPrice:     optionalFloatField(record, cols, "buyprice"),
			BuyQty:       optionalIntField(record, cols, "buyqty"),
			SellPrice:    optionalFloatField(record, cols, "sellprice"),
			SellQty:      optionalIntField(record, cols, "sellqty"),
			LTQ:          intField(record, cols["ltq"]),
			OpenInterest: optionalIntField(record, cols, "openinterest"),
		})
	}

	return ticks, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func floatField(record []string, idx int) *float64 {
	raw := field(record, idx)
	if raw == "" {
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
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optionalFloatField(record []string, cols map[string]int, name string) *float64 {
	idx, ok := cols[name]
	if !ok {
		return nil
	}
	return floatField(record, idx)
}

func optionalIntField(record []string, cols map[string]int, name string) *int64 {
	idx, ok := cols[name]
	if !ok {
		return nil
	}
	return intField(record, idx)
}
