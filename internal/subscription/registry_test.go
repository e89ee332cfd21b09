package subscription

import (
	"errors"
	"sync"
	"testing"

	"TickGate/internal/quote"
)

func TestRegistryCreateGetRoundtrip(t *testing.T) {
	r := NewRegistry(10, 100)

	rec, err := r.Create([]string{"600519.SH", "000001.SZ"}, quote.AdjustFront)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("record has empty id")
	}
	if rec.Status() != StatusActive {
		t.Errorf("status = %v, want active", rec.Status())
	}

	got, err := r.Get(rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != rec {
		t.Error("Get returned a different record")
	}
	if got.Adjust != quote.AdjustFront {
		t.Errorf("adjust = %v, want front", got.Adjust)
	}
}

func TestRegistryCreateInvalidSymbols(t *testing.T) {
	r := NewRegistry(10, 100)

	cases := [][]string{nil, {}, {"bogus"}, {"600519.SH", ""}}
	for _, symbols := range cases {
		_, err := r.Create(symbols, quote.AdjustNone)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Create(%v) err = %v, want ErrInvalidArgument", symbols, err)
		}
	}

	if r.Len() != 0 {
		t.Errorf("failed creates left %d records behind", r.Len())
	}
}

func TestRegistryCapacityExceeded(t *testing.T) {
	r := NewRegistry(3, 100)

	for i := 0; i < 3; i++ {
		if _, err := r.Create([]string{"600519.SH"}, quote.AdjustNone); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	_, err := r.Create([]string{"600519.SH"}, quote.AdjustNone)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}
	if r.Len() != 3 {
		t.Errorf("Len() = %d after rejected create, want 3", r.Len())
	}
}

func TestRegistryCapacityUnderConcurrency(t *testing.T) {
	const maxActive = 100
	const attempts = 150

	r := NewRegistry(maxActive, 10)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Create([]string{"600519.SH"}, quote.AdjustNone)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	created, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if created != maxActive {
		t.Errorf("created = %d, want exactly %d", created, maxActive)
	}
	if rejected != attempts-maxActive {
		t.Errorf("rejected = %d, want %d", rejected, attempts-maxActive)
	}
	if r.Len() != maxActive {
		t.Errorf("Len() = %d, want %d", r.Len(), maxActive)
	}
}

func TestRegistryCancelRemovesAndRejectsRepeat(t *testing.T) {
	r := NewRegistry(10, 100)

	rec, err := r.Create([]string{"600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cancelled, err := r.Cancel(rec.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled != rec {
		t.Error("Cancel returned a different record")
	}
	if cancelled.Status() != StatusDraining {
		t.Errorf("status = %v, want draining", cancelled.Status())
	}

	if _, err := r.Get(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after cancel err = %v, want ErrNotFound", err)
	}
	if _, err := r.Cancel(rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("repeat Cancel err = %v, want ErrNotFound", err)
	}

	if got := r.Resolve("600519.SH"); len(got) != 0 {
		t.Errorf("Resolve still finds cancelled record: %v", got)
	}
}

func TestRegistryCancelFreesCapacity(t *testing.T) {
	r := NewRegistry(2, 100)

	a, _ := r.Create([]string{"600519.SH"}, quote.AdjustNone)
	if _, err := r.Create([]string{"000001.SZ"}, quote.AdjustNone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := r.Create([]string{"830799.BJ"}, quote.AdjustNone); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err = %v, want ErrCapacityExceeded", err)
	}

	if _, err := r.Cancel(a.ID); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if _, err := r.Create([]string{"830799.BJ"}, quote.AdjustNone); err != nil {
		t.Errorf("Create after Cancel: %v, want success", err)
	}
}

func TestRegistryResolveIsolation(t *testing.T) {
	r := NewRegistry(10, 100)

	a, _ := r.Create([]string{"600519.SH"}, quote.AdjustNone)
	b, _ := r.Create([]string{"600519.SH", "000001.SZ"}, quote.AdjustNone)

	sh := r.Resolve("600519.SH")
	if len(sh) != 2 {
		t.Fatalf("Resolve(600519.SH) = %d records, want 2", len(sh))
	}

	sz := r.Resolve("000001.SZ")
	if len(sz) != 1 || sz[0] != b {
		t.Fatalf("Resolve(000001.SZ) = %v, want only the second record", sz)
	}

	if got := r.Resolve("999999.SH"); got != nil {
		t.Errorf("Resolve(unsubscribed) = %v, want nil", got)
	}

	_ = a
}

func TestRegistryCollapsesDuplicateSymbols(t *testing.T) {
	r := NewRegistry(10, 100)

	rec, err := r.Create([]string{"600519.SH", "600519.SH"}, quote.AdjustNone)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(rec.Symbols) != 1 {
		t.Errorf("symbols = %v, want deduplicated", rec.Symbols)
	}
	if got := r.Resolve("600519.SH"); len(got) != 1 {
		t.Errorf("Resolve = %d records, want 1", len(got))
	}
}
