package archive

import (
	"context"
	"testing"
	"time"

	"TickGate/internal/quote"
	"TickGate/internal/testutil"

	"github.com/rs/zerolog"
)

func TestRowFromTick(t *testing.T) {
	now := time.Now()
	tk := quote.Tick{
		Symbol: "600519.SH", Price: 1500, Volume: 100,
		Amount: 150000, Bid: 1499.9, Ask: 1500.1,
		Timestamp: now.Add(-time.Second),
	}

	row := RowFromTick(tk, now)
	if row.Symbol != tk.Symbol || row.Price != tk.Price || row.Volume != tk.Volume {
		t.Errorf("row = %+v does not mirror tick %+v", row, tk)
	}
	if !row.ReceivedAt.Equal(now) {
		t.Errorf("ReceivedAt = %v, want %v", row.ReceivedAt, now)
	}
}

func TestWriteBatchEmptyIsNoop(t *testing.T) {
	w := NewTickWriter(nil)
	if err := w.WriteBatch(context.Background(), nil); err != nil {
		t.Errorf("empty batch: %v", err)
	}
}

func TestWriteBatchRoundtrip(t *testing.T) {
	testutil.RequireIntegration(t)
	db, cleanup := testutil.SetupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	m := NewMigrator(db, "../../migrations", zerolog.Nop())
	if err := m.Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	w := NewTickWriter(db)
	now := time.Now().UTC().Truncate(time.Microsecond)
	rows := []TickRow{
		RowFromTick(quote.Tick{Symbol: "600519.SH", Price: 1500, Volume: 100, Timestamp: now}, now),
		RowFromTick(quote.Tick{Symbol: "000001.SZ", Price: 13.2, Volume: 500, Timestamp: now}, now),
	}
	if err := w.WriteBatch(ctx, rows); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM archive.ticks WHERE symbol = $1`, "600519.SH",
	).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("archived rows = %d, want 1", count)
	}
}
