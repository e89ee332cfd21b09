// Package archive provides optional best-effort persistence of the raw
// tick stream to Postgres. It sits entirely off the hot path: the bridge
// tees ticks into a bounded channel and the worker batch-writes them, so a
// slow or absent database never stalls quote delivery.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"TickGate/internal/quote"
)

// TickRow is one row in archive.ticks.
type TickRow struct {
	Symbol     string
	Price      float64
	Volume     int64
	Amount     float64
	Bid        float64
	Ask        float64
	Timestamp  time.Time
	ReceivedAt time.Time
}

// RowFromTick converts a raw tick into its archive row.
func RowFromTick(t quote.Tick, receivedAt time.Time) TickRow {
	return TickRow{
		Symbol:     t.Symbol,
		Price:      t.Price,
		Volume:     t.Volume,
		Amount:     t.Amount,
		Bid:        t.Bid,
		Ask:        t.Ask,
		Timestamp:  t.Timestamp,
		ReceivedAt: receivedAt,
	}
}

// TickWriter writes tick batches using multi-row INSERT. A portable
// alternative to the COPY protocol; switch to pgx CopyFrom if archive
// volume ever demands it.
type TickWriter struct {
	db *sql.DB
}

func NewTickWriter(db *sql.DB) *TickWriter {
	return &TickWriter{db: db}
}

// WriteBatch inserts a batch of tick rows in one statement.
func (w *TickWriter) WriteBatch(ctx context.Context, rows []TickRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO archive.ticks
		(symbol, price, volume, amount, bid, ask, ts, received_at)
		VALUES `

	values := make([]string, 0, len(rows))
	args := make([]interface{}, 0, len(rows)*8)

	for i, r := range rows {
		base := i * 8
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8,
		))
		args = append(args,
			r.Symbol, r.Price, r.Volume, r.Amount,
			r.Bid, r.Ask, r.Timestamp, r.ReceivedAt,
		)
	}

	query += strings.Join(values, ", ")

	_, err := w.db.ExecContext(ctx, query, args...)
	return err
}
