package tick

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	tickv1 "github.com/muhammadchandra19/tick-data-service/internal/domain/tick/v1"
	"github.com/muhammadchandra19/tick-data-service/pkg/questdb"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS tbt (
	datetime TIMESTAMP NOT NULL,
	ticker VARCHAR(20) NOT NULL,
	ltp DOUBLE PRECISION,
	buy_price DOUBLE PRECISION,
	buy_qty BIGINT,
	sell_price DOUBLE PRECISION,
	sell_qty BIGINT,
	ltq BIGINT,
	open_interest BIGINT
)`

// Repository represents the repository for tick-by-tick data.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new tick repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// EnsureSchema creates the tbt table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.client.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to ensure tbt schema: %w", err)
	}
	return nil
}

// Store stores a single tick.
func (r *Repository) Store(ctx context.Context, tick *tickv1.Tick) error {
	query := `INSERT INTO tbt (datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	err := r.client.Exec(ctx, query,
		tick.Datetime, tick.Ticker, tick.LTP, tick.BuyPrice, tick.BuyQty,
		tick.SellPrice, tick.SellQty, tick.LTQ, tick.OpenInterest)

	if err != nil {
		return fmt.Errorf("failed to store tick: %w", err)
	}

	return nil
}

// StoreBatch stores a batch of ticks.
func (r *Repository) StoreBatch(ctx context.Context, ticks []*tickv1.Tick) error {
	if len(ticks) == 0 {
		return nil
	}

	// Use CopyFrom for better performance with large batches
	_, err := r.client.CopyFrom(
		ctx,
		pgx.Identifier{"tbt"},
		[]string{"datetime", "ticker", "ltp", "buy_price", "buy_qty", "sell_price", "sell_qty", "ltq", "open_interest"},
		pgx.CopyFromSlice(len(ticks), func(i int) ([]any, error) {
			tick := ticks[i]
			return []any{
				tick.Datetime,
				tick.Ticker,
				tick.LTP,
				tick.BuyPrice,
				tick.BuyQty,
				tick.SellPrice,
				tick.SellQty,
				tick.LTQ,
				tick.OpenInterest,
			}, nil
		}),
	)

	if err != nil {
		return fmt.Errorf("failed to copy ticks: %w", err)
	}

	return nil
}

// GetByFilter retrieves ticks by filter, timestamp ascending so the
// aggregation engine's ordering precondition holds straight off the wire.
func (r *Repository) GetByFilter(ctx context.Context, filter tickv1.Filter) ([]*tickv1.Tick, error) {
	query := "SELECT datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest FROM tbt WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Ticker != "" {
		query += fmt.Sprintf(" AND ticker = $%d", argIndex)
		args = append(args, filter.Ticker)
		argIndex++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND datetime >= $%d", argIndex)
		args = append(args, *filter.From)
		argIndex++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND datetime <= $%d", argIndex)
		args = append(args, *filter.To)
		argIndex++
	}

	query += " ORDER BY datetime ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
	}

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []*tickv1.Tick
	for rows.Next() {
		tick := &tickv1.Tick{}
		err := rows.Scan(&tick.Datetime, &tick.Ticker, &tick.LTP, &tick.BuyPrice, &tick.BuyQty,
			&tick.SellPrice, &tick.SellQty, &tick.LTQ, &tick.OpenInterest)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tick: %w", err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return ticks, nil
}

// GetLatestByTicker retrieves the latest tick for a ticker, or nil when
// the ticker has no rows.
func (r *Repository) GetLatestByTicker(ctx context.Context, ticker string) (*tickv1.Tick, error) {
	query := `SELECT datetime, ticker, ltp, buy_price, buy_qty, sell_price, sell_qty, ltq, open_interest
			  FROM tbt
			  WHERE ticker = $1
			  ORDER BY datetime DESC
			  LIMIT 1`

	tick := &tickv1.Tick{}
	err := r.client.QueryRow(ctx, query, ticker).Scan(
		&tick.Datetime, &tick.Ticker, &tick.LTP, &tick.BuyPrice, &tick.BuyQty,
		&tick.SellPrice, &tick.SellQty, &tick.LTQ, &tick.OpenInterest)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest tick: %w", err)
	}

	return tick, nil
}
