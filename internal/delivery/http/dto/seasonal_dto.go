package dto

import (
	"github.com/shopspring/decimal"

	"tradeacademy/internal/service"
)

// PerformanceOutput represents one year of history in API responses
type PerformanceOutput struct {
	Year        int    `json:"year"`
	Performance string `json:"performance"`
}

// SeasonalOutput represents a month's tendency in API responses
type SeasonalOutput struct {
	Month         string              `json:"month"`
	Tendency      string              `json:"tendency"`
	Strength      int                 `json:"strength"`
	StrengthLabel string              `json:"strength_label"`
	Color         string              `json:"color"`
	Description   string              `json:"description"`
	History       []PerformanceOutput `json:"history"`
	Average       *decimal.Decimal    `json:"average"` // null without history
	AverageText   string              `json:"average_text,omitempty"`
}

// ToSeasonalOutput converts a month detail to its API shape
func ToSeasonalOutput(d *service.MonthDetail) SeasonalOutput {
	history := make([]PerformanceOutput, 0, len(d.Rows))
	for _, r := range d.Rows {
		history = append(history, PerformanceOutput{Year: r.Year, Performance: r.Performance})
	}

	out := SeasonalOutput{
		Month:         d.Month,
		Tendency:      string(d.Tendency),
		Strength:      d.Strength,
		StrengthLabel: d.StrengthLabel,
		Color:         d.Color,
		Description:   d.Description,
		History:       history,
	}
	if d.HasData {
		avg := d.Average
		out.Average = &avg
		out.AverageText = d.AverageText
	}
	return out
}

// ToSeasonalOutputs converts a list of month details
func ToSeasonalOutputs(details []*service.MonthDetail) []SeasonalOutput {
	out := make([]SeasonalOutput, 0, len(details))
	for _, d := range details {
		out = append(out, ToSeasonalOutput(d))
	}
	return out
}
