package service

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/repository"
)

var strengthRank = map[string]int{
	StrengthWeak:       0,
	StrengthModerate:   1,
	StrengthStrong:     2,
	StrengthVeryStrong: 3,
}

func TestStrengthLabel_Scenarios(t *testing.T) {
	tests := []struct {
		strength int
		want     string
	}{
		{82, StrengthVeryStrong},
		{45, StrengthModerate},
		{38, StrengthWeak},
		{60, StrengthStrong},
		{0, StrengthWeak},
		{39, StrengthWeak},
		{40, StrengthModerate},
		{59, StrengthModerate},
		{74, StrengthStrong},
		{75, StrengthVeryStrong},
		{100, StrengthVeryStrong},
	}
	for _, tt := range tests {
		if got := StrengthLabel(tt.strength); got != tt.want {
			t.Fatalf("StrengthLabel(%d) = %q, want %q", tt.strength, got, tt.want)
		}
	}
}

func TestStrengthLabel_MonotonicOverRange(t *testing.T) {
	prev := -1
	for s := 0; s <= 100; s++ {
		rank, ok := strengthRank[StrengthLabel(s)]
		if !ok {
			t.Fatalf("StrengthLabel(%d) returned unknown band %q", s, StrengthLabel(s))
		}
		if rank < prev {
			t.Fatalf("StrengthLabel not monotonic at %d", s)
		}
		prev = rank
	}
}

func TestTendencyColor_OpacityFloor(t *testing.T) {
	tendencies := []domain.Tendency{domain.TendencyBullish, domain.TendencyBearish, domain.TendencyNeutral}
	for _, tendency := range tendencies {
		for s := 0; s <= 100; s++ {
			c := TendencyColor(tendency, s)
			if c.Alpha < 0.3 {
				t.Fatalf("TendencyColor(%s, %d) alpha=%v below floor", tendency, s, c.Alpha)
			}
			ratio := float64(s) / 100
			if ratio > 0.3 && math.Abs(c.Alpha-ratio) > 1e-12 {
				t.Fatalf("TendencyColor(%s, %d) alpha=%v want %v", tendency, s, c.Alpha, ratio)
			}
		}
	}
}

func TestTendencyColor_CSS(t *testing.T) {
	tests := []struct {
		tendency domain.Tendency
		strength int
		want     string
	}{
		{domain.TendencyBullish, 82, "rgba(34, 197, 94, 0.82)"},
		{domain.TendencyBearish, 62, "rgba(239, 68, 68, 0.62)"},
		{domain.TendencyNeutral, 10, "rgba(107, 114, 128, 0.3)"},
	}
	for _, tt := range tests {
		if got := TendencyColor(tt.tendency, tt.strength).CSS(); got != tt.want {
			t.Fatalf("CSS() = %q, want %q", got, tt.want)
		}
	}
}

func TestHistoricalAverage_April(t *testing.T) {
	april := []domain.HistoricalPerformance{
		{Year: 2023, Performance: decimal.RequireFromString("4.1")},
		{Year: 2022, Performance: decimal.RequireFromString("3.8")},
		{Year: 2021, Performance: decimal.RequireFromString("5.2")},
		{Year: 2020, Performance: decimal.RequireFromString("12.8")},
		{Year: 2019, Performance: decimal.RequireFromString("3.9")},
	}
	avg, ok := HistoricalAverage(april)
	if !ok {
		t.Fatalf("expected hasData")
	}
	if !avg.Round(2).Equal(decimal.RequireFromString("5.96")) {
		t.Fatalf("avg=%s want 5.96", avg.String())
	}

	detail := BuildMonthDetail(domain.SeasonalTendency{Month: "April", Tendency: domain.TendencyBullish, Strength: 82, HistoricalData: april})
	if detail.AverageText != "+5.96%" || !detail.AveragePositive {
		t.Fatalf("AverageText=%q positive=%v", detail.AverageText, detail.AveragePositive)
	}
	if detail.Rows[3].Performance != "+12.8%" {
		t.Fatalf("row=%q want +12.8%%", detail.Rows[3].Performance)
	}
}

func TestHistoricalAverage_Empty(t *testing.T) {
	avg, ok := HistoricalAverage(nil)
	if ok || !avg.IsZero() {
		t.Fatalf("empty sequence: avg=%s ok=%v", avg.String(), ok)
	}

	detail := BuildMonthDetail(domain.SeasonalTendency{Month: "Nowhere"})
	if detail.HasData {
		t.Fatalf("expected HasData=false")
	}
}

func TestHistoricalAverage_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, m := range repository.SeedSeasonalTable() {
		want, _ := HistoricalAverage(m.HistoricalData)

		shuffled := append([]domain.HistoricalPerformance(nil), m.HistoricalData...)
		for i := 0; i < 20; i++ {
			rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			got, _ := HistoricalAverage(shuffled)
			if !got.Equal(want) {
				t.Fatalf("%s: shuffled avg=%s want %s", m.Month, got.String(), want.String())
			}
		}
	}
}

func TestHistoricalAverage_NegativeMonth(t *testing.T) {
	repo, _ := repository.NewSeasonalRepository(repository.SeedSeasonalTable())
	svc := NewSeasonalService(repo)

	detail, err := svc.Detail(context.Background(), "September")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	// (-4.9 - 9.3 - 4.8 - 3.9 + 1.9) / 5 = -4.2
	if detail.AverageText != "-4.20%" || detail.AveragePositive {
		t.Fatalf("AverageText=%q positive=%v", detail.AverageText, detail.AveragePositive)
	}
	if detail.BarClass != "bg-red-500" || detail.StrengthLabel != StrengthVeryStrong {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestSeasonalService_Tiles(t *testing.T) {
	repo, _ := repository.NewSeasonalRepository(repository.SeedSeasonalTable())
	svc := NewSeasonalService(repo)

	tiles, err := svc.Tiles(context.Background(), "june")
	if err != nil {
		t.Fatalf("Tiles: %v", err)
	}
	if len(tiles) != 12 {
		t.Fatalf("len(tiles)=%d", len(tiles))
	}
	selected := 0
	for _, tile := range tiles {
		if tile.Selected {
			selected++
			if tile.Month != "June" {
				t.Fatalf("selected %s want June", tile.Month)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("selected=%d want 1", selected)
	}

	june := tiles[5]
	if june.StrengthLabel != StrengthWeak || june.TendencyTitle != "Neutral" || june.Color != "rgba(107, 114, 128, 0.38)" {
		t.Fatalf("unexpected june tile: %+v", june)
	}

	if _, err := svc.Detail(context.Background(), "Smarch"); !errors.Is(err, domain.ErrMonthNotFound) {
		t.Fatalf("err=%v want ErrMonthNotFound", err)
	}
}

func TestSeasonalService_Details(t *testing.T) {
	repo, _ := repository.NewSeasonalRepository(repository.SeedSeasonalTable())
	svc := NewSeasonalService(repo)

	details, err := svc.Details(context.Background())
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if len(details) != 12 {
		t.Fatalf("len(details)=%d", len(details))
	}
	if details[0].Month != "January" || details[11].Month != "December" {
		t.Fatalf("details out of calendar order: %s..%s", details[0].Month, details[11].Month)
	}
	for _, d := range details {
		if !d.HasData || len(d.Rows) != 5 {
			t.Fatalf("%s: hasData=%v rows=%d", d.Month, d.HasData, len(d.Rows))
		}
		if d.Color == "" {
			t.Fatalf("%s: empty color", d.Month)
		}
	}
}

func TestBuildMonthDetail_NearZeroRowsKeepSign(t *testing.T) {
	detail := BuildMonthDetail(domain.SeasonalTendency{
		Month:    "June",
		Tendency: domain.TendencyNeutral,
		Strength: 38,
		HistoricalData: []domain.HistoricalPerformance{
			{Year: 2023, Performance: decimal.RequireFromString("-0.04")},
			{Year: 2022, Performance: decimal.RequireFromString("0.04")},
		},
	})

	neg, pos := detail.Rows[0], detail.Rows[1]
	if neg.Performance != "-0.0%" || neg.Positive {
		t.Fatalf("negative row = %+v, want -0.0%% in red", neg)
	}
	if pos.Performance != "+0.0%" || !pos.Positive {
		t.Fatalf("positive row = %+v, want +0.0%% in green", pos)
	}
}
