package domain

import (
	"github.com/shopspring/decimal"
)

// SeasonalTendency represents the directional bias of a calendar month.
// Strength is curated independently of HistoricalData.
type SeasonalTendency struct {
	Month          string                  `json:"month"`
	Tendency       Tendency                `json:"tendency"`
	Strength       int                     `json:"strength"` // 0-100
	HistoricalData []HistoricalPerformance `json:"historical_data"`
	Description    string                  `json:"description"`
}

// HistoricalPerformance is the return of a month in a given year, in percent
type HistoricalPerformance struct {
	Year        int             `json:"year"`
	Performance decimal.Decimal `json:"performance"`
}

// Tendency is the directional bias of a month
type Tendency string

// Tendency constants
const (
	TendencyBullish Tendency = "bullish"
	TendencyBearish Tendency = "bearish"
	TendencyNeutral Tendency = "neutral"
)

// Valid reports whether the value is one of the known tendencies
func (t Tendency) Valid() bool {
	switch t {
	case TendencyBullish, TendencyBearish, TendencyNeutral:
		return true
	}
	return false
}
