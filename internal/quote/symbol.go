package quote

import "fmt"

// ValidateSymbol checks the instrument identifier format: a six-digit code
// followed by an exchange suffix, e.g. "600519.SH", "000001.SZ", "830799.BJ".
func ValidateSymbol(symbol string) error {
	if len(symbol) != 9 {
		return fmt.Errorf("invalid symbol %q: want CODE.EXCHANGE", symbol)
	}
	for i := 0; i < 6; i++ {
		if symbol[i] < '0' || symbol[i] > '9' {
			return fmt.Errorf("invalid symbol %q: code must be six digits", symbol)
		}
	}
	if symbol[6] != '.' {
		return fmt.Errorf("invalid symbol %q: want CODE.EXCHANGE", symbol)
	}
	switch symbol[7:] {
	case "SH", "SZ", "BJ":
		return nil
	default:
		return fmt.Errorf("invalid symbol %q: unknown exchange %q", symbol, symbol[7:])
	}
}

// NormalizeSymbols validates, deduplicates, and returns the symbol set.
// Order is not preserved; duplicates collapse silently.
func NormalizeSymbols(symbols []string) ([]string, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("symbol list is empty")
	}

	seen := make(map[string]struct{}, len(symbols))
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		if err := ValidateSymbol(s); err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
