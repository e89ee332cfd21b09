package quote

import (
	"fmt"
	"time"
)

// Tick is a single market-data update for one instrument.
type Tick struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Volume    int64     `json:"volume"`
	Amount    float64   `json:"amount"`
	Bid       float64   `json:"bid"`
	Ask       float64   `json:"ask"`
	Timestamp time.Time `json:"timestamp"`
}

// Validate rejects ticks that must never enter the delivery path.
func (t Tick) Validate() error {
	if t.Symbol == "" {
		return fmt.Errorf("tick has empty symbol")
	}
	if t.Price < 0 {
		return fmt.Errorf("tick for %s has negative price %f", t.Symbol, t.Price)
	}
	if t.Volume < 0 {
		return fmt.Errorf("tick for %s has negative volume %d", t.Symbol, t.Volume)
	}
	return nil
}
