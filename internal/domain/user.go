package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a trader profile with performance and gamification state
type User struct {
	ID                 uuid.UUID         `json:"id"`
	Name               string            `json:"name"`
	Email              string            `json:"email"`
	Avatar             *string           `json:"avatar,omitempty"`
	JoinDate           time.Time         `json:"join_date"`
	TradingExperience  TradingExperience `json:"trading_experience"`
	PreferredTimeframe string            `json:"preferred_timeframe"`
	RiskTolerance      RiskTolerance     `json:"risk_tolerance"`
	TotalTrades        int               `json:"total_trades"`
	WinRate            float64           `json:"win_rate"` // Percentage 0-100
	TotalPnL           decimal.Decimal   `json:"total_pnl"`
	CurrentStreak      int               `json:"current_streak"`
	LongestStreak      int               `json:"longest_streak"`
	Achievements       []Achievement     `json:"achievements"`
	Level              int               `json:"level"`
	XP                 int               `json:"xp"`
	XPToNextLevel      int               `json:"xp_to_next_level"`
}

// XPForLevel returns the total XP span of the current level
func (u *User) XPForLevel() int {
	return u.XP + u.XPToNextLevel
}

// XPProgress returns the progress towards the next level as a percentage.
// It is 0 when the level span is empty.
func (u *User) XPProgress() float64 {
	total := u.XPForLevel()
	if total <= 0 {
		return 0
	}
	return float64(u.XP) / float64(total) * 100
}

// Clone returns a deep copy of the user so edits never alias the original
func (u User) Clone() User {
	clone := u
	if u.Avatar != nil {
		avatar := *u.Avatar
		clone.Avatar = &avatar
	}
	if u.Achievements != nil {
		clone.Achievements = make([]Achievement, len(u.Achievements))
		copy(clone.Achievements, u.Achievements)
	}
	return clone
}

// Equal reports whether two users match field for field
func (u User) Equal(other User) bool {
	if u.ID != other.ID ||
		u.Name != other.Name ||
		u.Email != other.Email ||
		!u.JoinDate.Equal(other.JoinDate) ||
		u.TradingExperience != other.TradingExperience ||
		u.PreferredTimeframe != other.PreferredTimeframe ||
		u.RiskTolerance != other.RiskTolerance ||
		u.TotalTrades != other.TotalTrades ||
		u.WinRate != other.WinRate ||
		!u.TotalPnL.Equal(other.TotalPnL) ||
		u.CurrentStreak != other.CurrentStreak ||
		u.LongestStreak != other.LongestStreak ||
		u.Level != other.Level ||
		u.XP != other.XP ||
		u.XPToNextLevel != other.XPToNextLevel {
		return false
	}

	if (u.Avatar == nil) != (other.Avatar == nil) {
		return false
	}
	if u.Avatar != nil && *u.Avatar != *other.Avatar {
		return false
	}

	if len(u.Achievements) != len(other.Achievements) {
		return false
	}
	for i := range u.Achievements {
		if u.Achievements[i] != other.Achievements[i] {
			return false
		}
	}

	return true
}

// Achievement represents an unlocked gamification badge. Immutable once created.
type Achievement struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"` // Key into the icon set, not validated
	UnlockedAt  time.Time `json:"unlocked_at"`
	Rarity      Rarity    `json:"rarity"`
}

// TradingExperience is the self-reported experience band of a trader
type TradingExperience string

// TradingExperience constants
const (
	ExperienceBeginner     TradingExperience = "Beginner"
	ExperienceIntermediate TradingExperience = "Intermediate"
	ExperienceAdvanced     TradingExperience = "Advanced"
	ExperienceExpert       TradingExperience = "Expert"
)

// TradingExperiences lists every experience band in display order
var TradingExperiences = []TradingExperience{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperienceExpert,
}

// Valid reports whether the value is one of the known bands
func (e TradingExperience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

// ParseTradingExperience converts a raw form value into a TradingExperience
func ParseTradingExperience(raw string) (TradingExperience, error) {
	e := TradingExperience(raw)
	if !e.Valid() {
		return "", ErrInvalidTradingExperience
	}
	return e, nil
}

// RiskTolerance is the trader's declared appetite for risk
type RiskTolerance string

// RiskTolerance constants
const (
	RiskConservative RiskTolerance = "Conservative"
	RiskModerate     RiskTolerance = "Moderate"
	RiskAggressive   RiskTolerance = "Aggressive"
)

// RiskTolerances lists every risk tolerance in display order
var RiskTolerances = []RiskTolerance{
	RiskConservative,
	RiskModerate,
	RiskAggressive,
}

// Valid reports whether the value is one of the known tolerances
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// ParseRiskTolerance converts a raw form value into a RiskTolerance
func ParseRiskTolerance(raw string) (RiskTolerance, error) {
	r := RiskTolerance(raw)
	if !r.Valid() {
		return "", ErrInvalidRiskTolerance
	}
	return r, nil
}

// Rarity classifies how hard an achievement is to unlock
type Rarity string

// Rarity constants
const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Valid reports whether the value is one of the known rarities
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}
