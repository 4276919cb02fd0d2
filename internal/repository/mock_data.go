package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tradeacademy/internal/domain"
)

// DefaultUserID is the id of the seeded trader
var DefaultUserID = uuid.MustParse("7f8d2a3e-5c1b-4e6f-9a0d-1b2c3d4e5f60")

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func pct(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// SeedUser returns a fresh copy of the seeded trader profile
func SeedUser() domain.User {
	return domain.User{
		ID:                 DefaultUserID,
		Name:               "Alex Thompson",
		Email:              "alex.thompson@email.com",
		JoinDate:           day(2023, time.June, 15),
		TradingExperience:  domain.ExperienceAdvanced,
		PreferredTimeframe: "4H / Daily",
		RiskTolerance:      domain.RiskModerate,
		TotalTrades:        247,
		WinRate:            68,
		TotalPnL:           decimal.RequireFromString("12450.75"),
		CurrentStreak:      7,
		LongestStreak:      15,
		Level:              12,
		XP:                 2840,
		XPToNextLevel:      1160,
		Achievements: []domain.Achievement{
			{
				ID:          uuid.MustParse("0b4f1c7e-1d2a-4a51-8c11-000000000001"),
				Title:       "First Profitable Month",
				Description: "Achieved your first profitable trading month",
				Icon:        "trophy",
				UnlockedAt:  day(2023, time.July, 1),
				Rarity:      domain.RarityCommon,
			},
			{
				ID:          uuid.MustParse("0b4f1c7e-1d2a-4a51-8c11-000000000002"),
				Title:       "Risk Manager",
				Description: "Maintained risk below 2% for 50 consecutive trades",
				Icon:        "shield",
				UnlockedAt:  day(2023, time.August, 15),
				Rarity:      domain.RarityRare,
			},
			{
				ID:          uuid.MustParse("0b4f1c7e-1d2a-4a51-8c11-000000000003"),
				Title:       "ICT Master",
				Description: "Successfully identified and traded 25 order blocks",
				Icon:        "target",
				UnlockedAt:  day(2023, time.September, 22),
				Rarity:      domain.RarityEpic,
			},
			{
				ID:          uuid.MustParse("0b4f1c7e-1d2a-4a51-8c11-000000000004"),
				Title:       "Seasonal Trader",
				Description: "Profited from seasonal tendencies in 3 different months",
				Icon:        "calendar",
				UnlockedAt:  day(2023, time.October, 10),
				Rarity:      domain.RarityRare,
			},
			{
				ID:          uuid.MustParse("0b4f1c7e-1d2a-4a51-8c11-000000000005"),
				Title:       "Consistency King",
				Description: "Achieved 10+ winning trades in a row",
				Icon:        "crown",
				UnlockedAt:  day(2023, time.November, 5),
				Rarity:      domain.RarityLegendary,
			},
		},
	}
}

func history(values ...string) []domain.HistoricalPerformance {
	// Values are listed newest first, starting at 2023.
	records := make([]domain.HistoricalPerformance, 0, len(values))
	for i, v := range values {
		records = append(records, domain.HistoricalPerformance{
			Year:        2023 - i,
			Performance: pct(v),
		})
	}
	return records
}

// SeedSeasonalTable returns a fresh copy of the twelve-month tendency table
func SeedSeasonalTable() []domain.SeasonalTendency {
	return []domain.SeasonalTendency{
		{
			Month:          "January",
			Tendency:       domain.TendencyBullish,
			Strength:       75,
			HistoricalData: history("3.2", "2.8", "4.1", "1.9", "3.7"),
			Description:    `January typically shows strong bullish momentum due to "January Effect" - institutional money flows and new year optimism.`,
		},
		{
			Month:          "February",
			Tendency:       domain.TendencyNeutral,
			Strength:       45,
			HistoricalData: history("-0.5", "1.2", "-1.1", "0.8", "0.3"),
			Description:    "February shows mixed results with no clear directional bias. Market consolidation is common.",
		},
		{
			Month:          "March",
			Tendency:       domain.TendencyBullish,
			Strength:       68,
			HistoricalData: history("2.9", "3.4", "2.1", "-12.4", "1.8"),
			Description:    "March often sees renewed buying interest as Q1 earnings approach and winter sentiment lifts.",
		},
		{
			Month:          "April",
			Tendency:       domain.TendencyBullish,
			Strength:       82,
			HistoricalData: history("4.1", "3.8", "5.2", "12.8", "3.9"),
			Description:    `April is historically one of the strongest months. "Sell in May" preparation drives buying.`,
		},
		{
			Month:          "May",
			Tendency:       domain.TendencyBearish,
			Strength:       62,
			HistoricalData: history("-1.8", "-5.4", "0.7", "4.5", "-6.6"),
			Description:    `"Sell in May and go away" - Traditional period of weakness as summer approaches.`,
		},
		{
			Month:          "June",
			Tendency:       domain.TendencyNeutral,
			Strength:       38,
			HistoricalData: history("0.2", "-8.4", "2.3", "1.8", "7.0"),
			Description:    "June shows mixed performance with high volatility around FOMC meetings and quarter-end.",
		},
		{
			Month:          "July",
			Tendency:       domain.TendencyBullish,
			Strength:       71,
			HistoricalData: history("3.1", "9.1", "2.4", "5.5", "1.3"),
			Description:    "July often sees a summer rally as earnings season begins and vacation trading lightens volume.",
		},
		{
			Month:          "August",
			Tendency:       domain.TendencyBearish,
			Strength:       55,
			HistoricalData: history("-1.6", "-4.2", "2.9", "7.0", "-1.8"),
			Description:    "August can be volatile with low volume. Vacation season creates unpredictable moves.",
		},
		{
			Month:          "September",
			Tendency:       domain.TendencyBearish,
			Strength:       78,
			HistoricalData: history("-4.9", "-9.3", "-4.8", "-3.9", "1.9"),
			Description:    "September is historically the worst month for stocks. Back-to-work selling and tax considerations.",
		},
		{
			Month:          "October",
			Tendency:       domain.TendencyBearish,
			Strength:       65,
			HistoricalData: history("-2.2", "8.1", "7.0", "-2.8", "2.0"),
			Description:    "October can be volatile with major crashes historically occurring. However, often marks bottoms.",
		},
		{
			Month:          "November",
			Tendency:       domain.TendencyBullish,
			Strength:       73,
			HistoricalData: history("9.1", "5.4", "-0.8", "10.8", "3.6"),
			Description:    "November typically strong due to holiday optimism and year-end positioning.",
		},
		{
			Month:          "December",
			Tendency:       domain.TendencyBullish,
			Strength:       69,
			HistoricalData: history("4.5", "-5.8", "4.5", "3.7", "3.0"),
			Description:    `December often sees "Santa Claus Rally" and tax-loss selling creating opportunities.`,
		},
	}
}
