package tbtfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pkgerrors "github.com/muhammadchandra19/tick-data-service/pkg/errors"
	logger_mock "github.com/muhammadchandra19/tick-data-service/pkg/logger/mock"
)

const relianceCSV = `Date,Time,Ticker,LTP,BuyPrice,BuyQty,SellPrice,SellQty,LTQ,OpenInterest
04/04/2022,09:15:00,RELIANCE.NSE,2610.00,2609.95,120,2610.05,85,10,0
04/04/2022,09:15:03,RELIANCE.NSE,2612.50,,,2612.55,40,5,0
`

func newTestReader(t *testing.T, dir string) *Reader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := logger_mock.NewMockInterface(ctrl)
	mockLogger.EXPECT().InfoContext(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return NewReader(dir, mockLogger)
}

func TestReader_ReadDate(t *testing.T) {
	date := time.Date(2022, 4, 4, 0, 0, 0, 0, time.UTC)

	t.Run("success - parses ticks and strips exchange suffix", func(t *testing.T) {
		dir := t.TempDir()
		dumpDir := filepath.Join(dir, "STOCK_TICK_04042022")
		require.NoError(t, os.Mkdir(dumpDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "RELIANCE.csv"), []byte(relianceCSV), 0o644))
		// Not a tick file, must be skipped.
		require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "README.txt"), []byte("ignore"), 0o644))

		ticks, err := newTestReader(t, dir).ReadDate(context.Background(), date)
		assert.NoError(t, err)
		assert.Len(t, ticks, 2)

		assert.Equal(t, "RELIANCE", ticks[0].Ticker)
		assert.Equal(t, time.Date(2022, 4, 4, 9, 15, 0, 0, time.UTC), ticks[0].Datetime)
		assert.Equal(t, 2610.00, *ticks[0].LTP)
		assert.Equal(t, int64(10), *ticks[0].LTQ)
		assert.Equal(t, 2609.95, *ticks[0].BuyPrice)

		assert.Equal(t, time.Date(2022, 4, 4, 9, 15, 3, 0, time.UTC), ticks[1].Datetime)
		assert.Nil(t, ticks[1].BuyPrice)
		assert.Nil(t, ticks[1].BuyQty)
		assert.Equal(t, 2612.55, *ticks[1].SellPrice)
	})

	t.Run("error - missing dump directory", func(t *testing.T) {
		dir := t.TempDir()

		ticks, err := newTestReader(t, dir).ReadDate(context.Background(), date)
		assert.Error(t, err)
		assert.True(t, pkgerrors.ErrorCodeEquals(err, pkgerrors.GeneralNotFoundError))
		assert.Nil(t, ticks)
	})

	t.Run("error - malformed datetime", func(t *testing.T) {
		dir := t.TempDir()
		dumpDir := filepath.Join(dir, "STOCK_TICK_04042022")
		require.NoError(t, os.Mkdir(dumpDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "BAD.csv"),
			[]byte("Date,Time,Ticker,LTP,LTQ\nnot-a-date,09:15:00,BAD.NSE,1,1\n"), 0o644))

		ticks, err := newTestReader(t, dir).ReadDate(context.Background(), date)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad datetime")
		assert.Nil(t, ticks)
	})

	t.Run("error - missing required column", func(t *testing.T) {
		dir := t.TempDir()
		dumpDir := filepath.Join(dir, "STOCK_TICK_04042022")
		require.NoError(t, os.Mkdir(dumpDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dumpDir, "BAD.csv"),
			[]byte("Date,Time,Ticker\n04/04/2022,09:15:00,BAD.NSE\n"), 0o644))

		ticks, err := newTestReader(t, dir).ReadDate(context.Background(), date)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing column")
		assert.Nil(t, ticks)
	})
}
