package domain

import (
	"errors"
	"math"
	"testing"
)

func TestXPProgress(t *testing.T) {
	tests := []struct {
		xp, toNext int
		want       float64
	}{
		{2840, 1160, 71},
		{0, 0, 0},
		{0, 500, 0},
		{500, 0, 100},
	}
	for _, tt := range tests {
		u := User{XP: tt.xp, XPToNextLevel: tt.toNext}
		if got := u.XPProgress(); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("XPProgress(%d, %d) = %v, want %v", tt.xp, tt.toNext, got, tt.want)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	avatar := "https://example.com/a.png"
	u := User{Name: "a", Avatar: &avatar, Achievements: []Achievement{{Title: "x"}}}
	c := u.Clone()
	c.Achievements[0].Title = "y"
	*c.Avatar = "changed"

	if u.Achievements[0].Title != "x" || *u.Avatar != "https://example.com/a.png" {
		t.Fatalf("clone shares memory with original")
	}
	if u.Equal(c) {
		t.Fatalf("expected edited clone to differ")
	}
	if !u.Equal(u.Clone()) {
		t.Fatalf("expected fresh clone to be equal")
	}
}

func TestParseEnums(t *testing.T) {
	for _, e := range TradingExperiences {
		if got, err := ParseTradingExperience(string(e)); err != nil || got != e {
			t.Fatalf("ParseTradingExperience(%q) = %q, %v", e, got, err)
		}
	}
	if _, err := ParseTradingExperience("Guru"); !errors.Is(err, ErrInvalidTradingExperience) {
		t.Fatalf("expected ErrInvalidTradingExperience, got %v", err)
	}

	for _, r := range RiskTolerances {
		if got, err := ParseRiskTolerance(string(r)); err != nil || got != r {
			t.Fatalf("ParseRiskTolerance(%q) = %q, %v", r, got, err)
		}
	}
	if _, err := ParseRiskTolerance("moderate"); !errors.Is(err, ErrInvalidRiskTolerance) {
		t.Fatalf("expected ErrInvalidRiskTolerance, got %v", err)
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs {
		if got, ok := ParseTab(string(tab.ID)); !ok || got != tab.ID {
			t.Fatalf("ParseTab(%q) = %q, %v", tab.ID, got, ok)
		}
	}
	if _, ok := ParseTab("trading"); ok {
		t.Fatalf("expected unknown tab to be rejected")
	}
	if len(Tabs) != 6 {
		t.Fatalf("len(Tabs) = %d, want 6", len(Tabs))
	}
}
