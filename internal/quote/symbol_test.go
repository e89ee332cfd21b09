package quote

import "testing"

func TestValidateSymbol(t *testing.T) {
	valid := []string{"600519.SH", "000001.SZ", "830799.BJ"}
	for _, s := range valid {
		if err := ValidateSymbol(s); err != nil {
			t.Errorf("ValidateSymbol(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{
		"",
		"600519",
		"600519.XX",
		"60051.SH",
		"6005190.SH",
		"ABCDEF.SH",
		"600519-SH",
		"600519.sh",
	}
	for _, s := range invalid {
		if err := ValidateSymbol(s); err == nil {
			t.Errorf("ValidateSymbol(%q) = nil, want error", s)
		}
	}
}

func TestNormalizeSymbolsDeduplicates(t *testing.T) {
	got, err := NormalizeSymbols([]string{"600519.SH", "000001.SZ", "600519.SH"})
	if err != nil {
		t.Fatalf("NormalizeSymbols: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d symbols, want 2: %v", len(got), got)
	}
}

func TestNormalizeSymbolsEmpty(t *testing.T) {
	if _, err := NormalizeSymbols(nil); err == nil {
		t.Error("empty symbol list must fail")
	}
}

func TestNormalizeSymbolsRejectsInvalid(t *testing.T) {
	if _, err := NormalizeSymbols([]string{"600519.SH", "bogus"}); err == nil {
		t.Error("invalid symbol must fail the whole set")
	}
}

func TestTickValidate(t *testing.T) {
	good := sampleTick("600519.SH", 100)
	if err := good.Validate(); err != nil {
		t.Errorf("valid tick rejected: %v", err)
	}

	bad := []Tick{
		{Symbol: "", Price: 1},
		{Symbol: "600519.SH", Price: -1},
		{Symbol: "600519.SH", Price: 1, Volume: -5},
	}
	for _, tick := range bad {
		if err := tick.Validate(); err == nil {
			t.Errorf("tick %+v must be rejected", tick)
		}
	}
}
