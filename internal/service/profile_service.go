package service

import (
	"context"
	"fmt"
	"strconv"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/utils"
)

// recentAchievementLimit is how many achievements the profile page lists
const recentAchievementLimit = 5

// RarityClass returns the compact badge classes used on the profile page
func RarityClass(r domain.Rarity) string {
	switch r {
	case domain.RarityRare:
		return "text-blue-600 bg-blue-100"
	case domain.RarityEpic:
		return "text-purple-600 bg-purple-100"
	case domain.RarityLegendary:
		return "text-yellow-600 bg-yellow-100"
	default:
		return "text-gray-600 bg-gray-100"
	}
}

// RarityBadgeClass returns the badge classes used on the achievements page
func RarityBadgeClass(r domain.Rarity) string {
	switch r {
	case domain.RarityCommon:
		return "bg-gray-100 text-gray-800"
	case domain.RarityRare:
		return "bg-blue-100 text-blue-800"
	case domain.RarityEpic:
		return "bg-purple-100 text-purple-800"
	default:
		return "bg-yellow-100 text-yellow-800"
	}
}

// StatCard is a headline number on the dashboard and profile pages
type StatCard struct {
	Value string
	Label string
	Class string
}

// ProfileSummary is the derived, display-ready view of a user
type ProfileSummary struct {
	XPProgress         float64
	XPProgressStyle    string
	XPText             string
	Stats              []StatCard
	RecentAchievements []domain.Achievement
	TotalAchievements  int
	HasMore            bool
}

// ProfileService derives display models for the trader profile
type ProfileService struct {
	userRepo domain.UserRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Current returns the committed user
func (s *ProfileService) Current(ctx context.Context) (*domain.User, error) {
	user, err := s.userRepo.GetDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return user, nil
}

// Summarize builds the profile summary for a user
func Summarize(user *domain.User) ProfileSummary {
	progress := user.XPProgress()

	recent := user.Achievements
	if len(recent) > recentAchievementLimit {
		recent = recent[:recentAchievementLimit]
	}

	return ProfileSummary{
		XPProgress:         progress,
		XPProgressStyle:    "width: " + strconv.FormatFloat(progress, 'f', 2, 64) + "%",
		XPText:             fmt.Sprintf("%d / %d XP", user.XP, user.XPForLevel()),
		Stats:              StatCards(user),
		RecentAchievements: recent,
		TotalAchievements:  len(user.Achievements),
		HasMore:            len(user.Achievements) > recentAchievementLimit,
	}
}

// StatCards returns the four headline statistics of a user
func StatCards(user *domain.User) []StatCard {
	pnlClass := "text-green-600"
	if user.TotalPnL.IsNegative() {
		pnlClass = "text-red-600"
	}

	return []StatCard{
		{Value: utils.Count(user.TotalTrades), Label: "Total Trades", Class: "text-gray-900"},
		{Value: strconv.FormatFloat(user.WinRate, 'f', -1, 64) + "%", Label: "Win Rate", Class: "text-green-600"},
		{Value: utils.Money(user.TotalPnL), Label: "Total P&L", Class: pnlClass},
		{Value: strconv.Itoa(user.CurrentStreak), Label: "Current Streak", Class: "text-blue-600"},
	}
}
