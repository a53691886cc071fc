package tick

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	mockQuestDB "github.com/muhammadchandra19/tick-data-service/pkg/questdb/mock"
)

func TestTick_Store(t *testing.T) {
	query := `INSERT INTO tbt (datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(testData *tickv1.Tick, mock *mockQuestDB.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		testData *tickv1.Tick
	}{
		{
			name: "success",
			mockFn: func(testData *tickv1.Tick, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(
					gomock.Any(),
					query,
					testData.Datetime,
					testData.Ticker,
					testData.LTP,
					testData.BuyPrice,
					testData.BuyQty,
					testData.SellPrice,
					testData.SellQty,
					testData.LTQ,
					testData.OpenInterest,
				).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: &tickv1.Tick{
				Datetime:  now,
				Ticker:    "RELIANCE",
				LTP:       tickv1.Float64(2855.5),
				BuyPrice:  tickv1.Float64(2855.25),
				BuyQty:    tickv1.Int64(120),
				SellPrice: tickv1.Float64(2855.75),
				SellQty:   tickv1.Int64(85),
				LTQ:       tickv1.Int64(10),
			},
		},
		{
			name: "error - exec fails",
			mockFn: func(testData *tickv1.Tick, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(
					gomock.Any(),
					query,
					testData.Datetime,
					testData.Ticker,
					testData.LTP,
					testData.BuyPrice,
					testData.BuyQty,
					testData.SellPrice,
					testData.SellQty,
					testData.LTQ,
					testData.OpenInterest,
				).Return(errors.New("exec failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			testData: &tickv1.Tick{
				Datetime: now,
				Ticker:   "RELIANCE",
				LTP:      tickv1.Float64(2855.5),
				LTQ:      tickv1.Int64(10),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)

			tc.mockFn(tc.testData, mockClient)

			repo := NewRepository(mockClient)
			err := repo.Store(context.Background(), tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestTick_StoreBatch(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(testData []*tickv1.Tick, mock *mockQuestDB.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		testData []*tickv1.Tick
	}{
		{
			name: "success",
			mockFn: func(testData []*tickv1.Tick, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: []*tickv1.Tick{
				{
					Datetime: now,
					Ticker:   "TCS",
					LTP:      tickv1.Float64(4120),
					LTQ:      tickv1.Int64(5),
				},
			},
		},
		{
			name: "success - empty batch skips copy",
			mockFn: func(testData []*tickv1.Tick, mock *mockQuestDB.MockQuestDBClient) {
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: []*tickv1.Tick{},
		},
		{
			name: "error - copy from fails",
			mockFn: func(testData []*tickv1.Tick, mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("copy from failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			testData: []*tickv1.Tick{
				{
					Datetime: now,
					Ticker:   "TCS",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)

			tc.mockFn(tc.testData, mockClient)

			repo := NewRepository(mockClient)
			err := repo.StoreBatch(context.Background(), tc.testData)
			tc.assertFn(t, err)
		})
	}
}

func TestTick_GetByFilter(t *testing.T) {
	query := "SELECT datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest FROM tbt WHERE 1=1"
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface)
		assertFn func(t *testing.T, err error, ticks []*tickv1.Tick)
		filter   tickv1.Filter
	}{
		{
			name: "success: with all filters",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().Query(
					gomock.Any(),
					query+" AND ticker = $1 AND datetime >= $2 AND datetime <= $3 ORDER BY datetime ASC LIMIT $4",
					[]interface{}{"RELIANCE", now, now, 10},
				).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = now
					*dest[1].(*string) = "RELIANCE"
					*dest[2].(**float64) = tickv1.Float64(2855.5)
					*dest[3].(**float64) = tickv1.Float64(2855.25)
					*dest[4].(**int64) = tickv1.Int64(120)
					*dest[5].(**float64) = tickv1.Float64(2855.75)
					*dest[6].(**int64) = tickv1.Int64(85)
					*dest[7].(**int64) = tickv1.Int64(10)
					*dest[8].(**int64) = nil
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			filter: tickv1.Filter{
				Ticker: "RELIANCE",
				From:   &now,
				To:     &now,
				Limit:  10,
			},
			assertFn: func(t *testing.T, err error, ticks []*tickv1.Tick) {
				assert.NoError(t, err)
				assert.Len(t, ticks, 1)
				assert.Equal(t, "RELIANCE", ticks[0].Ticker)
				assert.Equal(t, 2855.5, *ticks[0].LTP)
				assert.Nil(t, ticks[0].OpenInterest)
			},
		},
		{
			name: "success: no rows",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().Query(
					gomock.Any(),
					query+" AND ticker = $1 ORDER BY datetime ASC",
					[]interface{}{"RELIANCE"},
				).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			filter: tickv1.Filter{
				Ticker: "RELIANCE",
			},
			assertFn: func(t *testing.T, err error, ticks []*tickv1.Tick) {
				assert.NoError(t, err)
				assert.Len(t, ticks, 0)
			},
		},
		{
			name: "error: query fails",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().Query(
					gomock.Any(),
					query+" AND ticker = $1 ORDER BY datetime ASC",
					[]interface{}{"RELIANCE"},
				).Return(nil, errors.New("query failed"))
			},
			filter: tickv1.Filter{
				Ticker: "RELIANCE",
			},
			assertFn: func(t *testing.T, err error, ticks []*tickv1.Tick) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "query failed")
			},
		},
		{
			name: "error: scan fails",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().Query(
					gomock.Any(),
					query+" AND ticker = $1 ORDER BY datetime ASC",
					[]interface{}{"RELIANCE"},
				).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("scan failed"))
				mockRows.EXPECT().Close()
			},
			filter: tickv1.Filter{
				Ticker: "RELIANCE",
			},
			assertFn: func(t *testing.T, err error, ticks []*tickv1.Tick) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "scan failed")
			},
		},
		{
			name: "error: rows.Err() fails",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().Query(
					gomock.Any(),
					query+" AND ticker = $1 ORDER BY datetime ASC",
					[]interface{}{"RELIANCE"},
				).Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(errors.New("iteration error"))
				mockRows.EXPECT().Close()
			},
			filter: tickv1.Filter{
				Ticker: "RELIANCE",
			},
			assertFn: func(t *testing.T, err error, ticks []*tickv1.Tick) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "iteration error")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			mockRows := mockQuestDB.NewMockRowsInterface(ctrl)

			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			ticks, err := repo.GetByFilter(context.Background(), tc.filter)
			tc.assertFn(t, err, ticks)
		})
	}
}

func TestTick_GetLatestByTicker(t *testing.T) {
	query := `SELECT datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest
			  FROM tbt
			  WHERE ticker = $1
			  ORDER BY datetime DESC
			  LIMIT 1`
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface)
		assertFn func(t *testing.T, err error, tick *tickv1.Tick)
		ticker   string
	}{
		{
			name: "success",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), query, "INFY").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = now
					*dest[1].(*string) = "INFY"
					*dest[2].(**float64) = tickv1.Float64(1520.4)
					*dest[3].(**float64) = tickv1.Float64(1520.3)
					*dest[4].(**int64) = tickv1.Int64(50)
					*dest[5].(**float64) = tickv1.Float64(1520.5)
					*dest[6].(**int64) = tickv1.Int64(60)
					*dest[7].(**int64) = tickv1.Int64(25)
					*dest[8].(**int64) = nil
					return nil
				})
			},
			ticker: "INFY",
			assertFn: func(t *testing.T, err error, tick *tickv1.Tick) {
				assert.NoError(t, err)
				assert.NotNil(t, tick)
				assert.Equal(t, "INFY", tick.Ticker)
				assert.Equal(t, 1520.4, *tick.LTP)
				assert.Equal(t, int64(25), *tick.LTQ)
			},
		},
		{
			name: "no rows - returns nil",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), query, "INFY").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			ticker: "INFY",
			assertFn: func(t *testing.T, err error, tick *tickv1.Tick) {
				assert.NoError(t, err)
				assert.Nil(t, tick)
			},
		},
		{
			name: "error - query fails",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient, mockRows *mockQuestDB.MockRowsInterface) {
				mock.EXPECT().QueryRow(gomock.Any(), query, "INFY").Return(mockRows)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("query failed"))
			},
			ticker: "INFY",
			assertFn: func(t *testing.T, err error, tick *tickv1.Tick) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get latest tick")
				assert.Nil(t, tick)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			mockRows := mockQuestDB.NewMockRowsInterface(ctrl)

			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			tick, err := repo.GetLatestByTicker(context.Background(), tc.ticker)
			tc.assertFn(t, err, tick)
		})
	}
}

func TestTick_EnsureSchema(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(mock *mockQuestDB.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), createTableSQL).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error - exec fails",
			mockFn: func(mock *mockQuestDB.MockQuestDBClient) {
				mock.EXPECT().Exec(gomock.Any(), createTableSQL).Return(errors.New("ddl failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to ensure tbt schema")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mockQuestDB.NewMockQuestDBClient(ctrl)
			tc.mockFn(mockClient)

			repo := NewRepository(mockClient)
			err := repo.EnsureSchema(context.Background())
			tc.assertFn(t, err)
		})
	}
}
