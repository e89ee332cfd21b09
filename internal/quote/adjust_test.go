package quote

import (
	"testing"
	"time"
)

func sampleTick(symbol string, price float64) Tick {
	return Tick{
		Symbol:    symbol,
		Price:     price,
		Volume:    100,
		Amount:    price * 100,
		Bid:       price - 0.01,
		Ask:       price + 0.01,
		Timestamp: time.Now(),
	}
}

func TestAdjusterApplyNone(t *testing.T) {
	a := NewAdjuster()
	a.SetFactor("600519.SH", Factor{Front: 0.9, Back: 1.1})

	in := sampleTick("600519.SH", 100)
	got := a.Apply(in, AdjustNone)

	if got != in {
		t.Errorf("AdjustNone changed the tick: got %+v, want %+v", got, in)
	}
}

func TestAdjusterApplyFront(t *testing.T) {
	a := NewAdjuster()
	a.SetFactor("600519.SH", Factor{Front: 0.5, Back: 2.0})

	in := sampleTick("600519.SH", 100)
	got := a.Apply(in, AdjustFront)

	if got.Price != 50 {
		t.Errorf("front-adjusted price = %f, want 50", got.Price)
	}
	if got.Bid != in.Bid*0.5 || got.Ask != in.Ask*0.5 {
		t.Errorf("bid/ask not adjusted: bid=%f ask=%f", got.Bid, got.Ask)
	}
	if got.Volume != in.Volume || got.Amount != in.Amount {
		t.Errorf("volume/amount must pass through unchanged")
	}
	if in.Price != 100 {
		t.Errorf("Apply mutated the input tick")
	}
}

func TestAdjusterApplyBack(t *testing.T) {
	a := NewAdjuster()
	a.SetFactor("600519.SH", Factor{Front: 0.5, Back: 2.0})

	got := a.Apply(sampleTick("600519.SH", 100), AdjustBack)
	if got.Price != 200 {
		t.Errorf("back-adjusted price = %f, want 200", got.Price)
	}
}

func TestAdjusterUnknownSymbolPassesThrough(t *testing.T) {
	a := NewAdjuster()

	in := sampleTick("000001.SZ", 13.2)
	got := a.Apply(in, AdjustFront)
	if got != in {
		t.Errorf("symbol without factor must pass through: got %+v, want %+v", got, in)
	}
}

func TestAdjusterDegenerateRatioPassesThrough(t *testing.T) {
	a := NewAdjuster()

	for _, f := range []Factor{{Front: 0}, {Front: -1}, {Front: 1}} {
		a.SetFactor("000001.SZ", f)
		in := sampleTick("000001.SZ", 13.2)
		if got := a.Apply(in, AdjustFront); got != in {
			t.Errorf("ratio %f must pass through, got %+v", f.Front, got)
		}
	}
}

func TestParseAdjustType(t *testing.T) {
	tests := []struct {
		in      string
		want    AdjustType
		wantErr bool
	}{
		{"none", AdjustNone, false},
		{"", AdjustNone, false},
		{"front", AdjustFront, false},
		{"back", AdjustBack, false},
		{"sideways", AdjustNone, true},
	}

	for _, tt := range tests {
		got, err := ParseAdjustType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAdjustType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAdjustType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
