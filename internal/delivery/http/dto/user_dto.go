package dto

import (
	"github.com/shopspring/decimal"

	"tradeacademy/internal/domain"
)

// AchievementOutput represents an achievement in API responses
type AchievementOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlocked_at"`
	Rarity      string `json:"rarity"`
}

// UserOutput represents the trader profile in API responses
type UserOutput struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Avatar             *string             `json:"avatar,omitempty"`
	JoinDate           string              `json:"join_date"`
	TradingExperience  string              `json:"trading_experience"`
	PreferredTimeframe string              `json:"preferred_timeframe"`
	RiskTolerance      string              `json:"risk_tolerance"`
	TotalTrades        int                 `json:"total_trades"`
	WinRate            float64             `json:"win_rate"`
	TotalPnL           decimal.Decimal     `json:"total_pnl"`
	CurrentStreak      int                 `json:"current_streak"`
	LongestStreak      int                 `json:"longest_streak"`
	Level              int                 `json:"level"`
	XP                 int                 `json:"xp"`
	XPToNextLevel      int                 `json:"xp_to_next_level"`
	XPProgress         float64             `json:"xp_progress"`
	Achievements       []AchievementOutput `json:"achievements"`
}

// SessionOutput represents the dashboard session state in API responses
type SessionOutput struct {
	SessionID     string      `json:"session_id"`
	ActiveTab     string      `json:"active_tab"`
	Editing       bool        `json:"editing"`
	Working       *UserOutput `json:"working,omitempty"`
	SelectedMonth *string     `json:"selected_month"`
}

const dateLayout = "2006-01-02"

// ToAchievementOutput converts an achievement to its API shape
func ToAchievementOutput(a domain.Achievement) AchievementOutput {
	return AchievementOutput{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		Icon:        a.Icon,
		UnlockedAt:  a.UnlockedAt.Format(dateLayout),
		Rarity:      string(a.Rarity),
	}
}

// ToAchievementOutputs converts a list of achievements
func ToAchievementOutputs(achievements []domain.Achievement) []AchievementOutput {
	out := make([]AchievementOutput, 0, len(achievements))
	for _, a := range achievements {
		out = append(out, ToAchievementOutput(a))
	}
	return out
}

// ToUserOutput converts a user to its API shape
func ToUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:                 u.ID.String(),
		Name:               u.Name,
		Email:              u.Email,
		Avatar:             u.Avatar,
		JoinDate:           u.JoinDate.Format(dateLayout),
		TradingExperience:  string(u.TradingExperience),
		PreferredTimeframe: u.PreferredTimeframe,
		RiskTolerance:      string(u.RiskTolerance),
		TotalTrades:        u.TotalTrades,
		WinRate:            u.WinRate,
		TotalPnL:           u.TotalPnL,
		CurrentStreak:      u.CurrentStreak,
		LongestStreak:      u.LongestStreak,
		Level:              u.Level,
		XP:                 u.XP,
		XPToNextLevel:      u.XPToNextLevel,
		XPProgress:         u.XPProgress(),
		Achievements:       ToAchievementOutputs(u.Achievements),
	}
}
