package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/utils"
)

// Strength band labels
const (
	StrengthWeak       = "Weak"
	StrengthModerate   = "Moderate"
	StrengthStrong     = "Strong"
	StrengthVeryStrong = "Very Strong"
)

// minTendencyOpacity keeps weak signals visible on the month grid
const minTendencyOpacity = 0.3

// StrengthLabel classifies a 0-100 strength score.
// Band lower bounds are inclusive: 40 Moderate, 60 Strong, 75 Very Strong.
func StrengthLabel(strength int) string {
	switch {
	case strength >= 75:
		return StrengthVeryStrong
	case strength >= 60:
		return StrengthStrong
	case strength >= 40:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// Color is an RGBA display color
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// CSS renders the color as a CSS rgba() value
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

// TendencyColor returns the tile color for a tendency, with opacity scaled by strength
func TendencyColor(tendency domain.Tendency, strength int) Color {
	opacity := math.Max(minTendencyOpacity, float64(strength)/100)

	switch tendency {
	case domain.TendencyBullish:
		return Color{R: 34, G: 197, B: 94, Alpha: opacity}
	case domain.TendencyBearish:
		return Color{R: 239, G: 68, B: 68, Alpha: opacity}
	default:
		return Color{R: 107, G: 114, B: 128, Alpha: opacity}
	}
}

// TendencyIcon returns the icon key for a tendency
func TendencyIcon(tendency domain.Tendency) string {
	switch tendency {
	case domain.TendencyBullish:
		return "trending-up"
	case domain.TendencyBearish:
		return "trending-down"
	default:
		return "minus"
	}
}

// TendencyTextClass returns the text color class used next to the icon
func TendencyTextClass(tendency domain.Tendency) string {
	switch tendency {
	case domain.TendencyBullish:
		return "text-green-600"
	case domain.TendencyBearish:
		return "text-red-600"
	default:
		return "text-gray-600"
	}
}

// TendencyBarClass returns the fill class of the strength indicator bar
func TendencyBarClass(tendency domain.Tendency) string {
	switch tendency {
	case domain.TendencyBullish:
		return "bg-green-500"
	case domain.TendencyBearish:
		return "bg-red-500"
	default:
		return "bg-gray-500"
	}
}

// TendencyTitle capitalises the tendency for display, e.g. "Bullish"
func TendencyTitle(tendency domain.Tendency) string {
	s := string(tendency)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// HistoricalAverage returns the arithmetic mean of the performance values.
// hasData is false, and the average zero, for an empty sequence.
func HistoricalAverage(records []domain.HistoricalPerformance) (avg decimal.Decimal, hasData bool) {
	if len(records) == 0 {
		return decimal.Zero, false
	}

	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(r.Performance)
	}

	return sum.Div(decimal.NewFromInt(int64(len(records)))), true
}

// MonthTile is a single cell of the month grid
type MonthTile struct {
	Month         string
	Tendency      domain.Tendency
	TendencyTitle string
	Strength      int
	StrengthLabel string
	Color         string
	Icon          string
	IconClass     string
	Selected      bool
}

// PerformanceRow is a formatted year of history
type PerformanceRow struct {
	Year        int
	Performance string
	Positive    bool
}

// MonthDetail is the expanded analysis of a selected month
type MonthDetail struct {
	Month           string
	Tendency        domain.Tendency
	TendencyTitle   string
	Strength        int
	StrengthLabel   string
	Color           string
	Description     string
	Icon            string
	IconClass       string
	BarClass        string
	Rows            []PerformanceRow
	Average         decimal.Decimal
	AverageText     string
	AveragePositive bool
	HasData         bool
}

// SeasonalService builds display models over the seasonal table
type SeasonalService struct {
	repo domain.SeasonalRepository
}

// NewSeasonalService creates a new SeasonalService
func NewSeasonalService(repo domain.SeasonalRepository) *SeasonalService {
	return &SeasonalService{repo: repo}
}

// Tiles returns the twelve month tiles, marking the selected month if any
func (s *SeasonalService) Tiles(ctx context.Context, selected string) ([]MonthTile, error) {
	table, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal tendencies: %w", err)
	}

	tiles := make([]MonthTile, 0, len(table))
	for _, m := range table {
		tiles = append(tiles, MonthTile{
			Month:         m.Month,
			Tendency:      m.Tendency,
			TendencyTitle: TendencyTitle(m.Tendency),
			Strength:      m.Strength,
			StrengthLabel: StrengthLabel(m.Strength),
			Color:         TendencyColor(m.Tendency, m.Strength).CSS(),
			Icon:          TendencyIcon(m.Tendency),
			IconClass:     TendencyTextClass(m.Tendency),
			Selected:      selected != "" && strings.EqualFold(m.Month, selected),
		})
	}

	return tiles, nil
}

// Details returns the expanded view of every month in calendar order
func (s *SeasonalService) Details(ctx context.Context) ([]*MonthDetail, error) {
	table, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasonal tendencies: %w", err)
	}

	details := make([]*MonthDetail, 0, len(table))
	for _, m := range table {
		details = append(details, BuildMonthDetail(m))
	}
	return details, nil
}

// Detail returns the expanded view of one month
func (s *SeasonalService) Detail(ctx context.Context, month string) (*MonthDetail, error) {
	m, err := s.repo.GetByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	return BuildMonthDetail(*m), nil
}

// BuildMonthDetail derives the display model of a month record
func BuildMonthDetail(m domain.SeasonalTendency) *MonthDetail {
	rows := make([]PerformanceRow, 0, len(m.HistoricalData))
	for _, r := range m.HistoricalData {
		rows = append(rows, PerformanceRow{
			Year:        r.Year,
			Performance: utils.SignedPercent(r.Performance, 1),
			Positive:    !r.Performance.IsNegative(),
		})
	}

	avg, hasData := HistoricalAverage(m.HistoricalData)
	avg = avg.Round(2)

	return &MonthDetail{
		Month:           m.Month,
		Tendency:        m.Tendency,
		TendencyTitle:   TendencyTitle(m.Tendency),
		Strength:        m.Strength,
		StrengthLabel:   StrengthLabel(m.Strength),
		Color:           TendencyColor(m.Tendency, m.Strength).CSS(),
		Description:     m.Description,
		Icon:            TendencyIcon(m.Tendency),
		IconClass:       TendencyTextClass(m.Tendency),
		BarClass:        TendencyBarClass(m.Tendency),
		Rows:            rows,
		Average:         avg,
		AverageText:     utils.SignedPercent(avg, 2),
		AveragePositive: !avg.IsNegative(),
		HasData:         hasData,
	}
}
