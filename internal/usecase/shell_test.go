package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tradeacademy/internal/domain"
	"tradeacademy/internal/repository"
)

func newTestShell(t *testing.T) (*Shell, domain.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(repository.SeedUser)
	seasons, err := repository.NewSeasonalRepository(repository.SeedSeasonalTable())
	if err != nil {
		t.Fatalf("NewSeasonalRepository: %v", err)
	}
	return NewShell(uuid.New(), users, seasons, nil), users
}

func mustDispatch(t *testing.T, s *Shell, cmd Command) {
	t.Helper()
	if err := s.Dispatch(context.Background(), cmd); err != nil {
		t.Fatalf("Dispatch(%T): %v", cmd, err)
	}
}

func snapshot(t *testing.T, s *Shell) View {
	t.Helper()
	v, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	return v
}

func TestShell_InitialState(t *testing.T) {
	s, _ := newTestShell(t)
	v := snapshot(t, s)
	if v.ActiveTab != domain.TabDashboard || v.Editing || v.HasSelection {
		t.Fatalf("unexpected initial view: %+v", v)
	}
}

func TestShell_SelectTab(t *testing.T) {
	s, _ := newTestShell(t)

	tests := []struct {
		raw  string
		want domain.TabID
	}{
		{"profile", domain.TabProfile},
		{"seasonal", domain.TabSeasonal},
		{"analysis", domain.TabAnalysis},
		{"achievements", domain.TabAchievements},
		{"settings", domain.TabSettings},
		{"bogus", domain.TabDashboard},
		{"", domain.TabDashboard},
	}
	for _, tt := range tests {
		mustDispatch(t, s, SelectTab{Tab: tt.raw})
		if got := snapshot(t, s).ActiveTab; got != tt.want {
			t.Fatalf("SelectTab(%q) -> %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestShell_SaveReplacesCommittedUser(t *testing.T) {
	s, users := newTestShell(t)
	ctx := context.Background()

	mustDispatch(t, s, SelectTab{Tab: "profile"})
	mustDispatch(t, s, ToggleEdit{})
	mustDispatch(t, s, StageProfileField{Field: FieldName, Value: "Jordan Lee"})

	working := snapshot(t, s).Working
	mustDispatch(t, s, SaveProfile{Fields: map[string]string{
		FieldTradingExperience:  "Expert",
		FieldPreferredTimeframe: "1H",
		FieldRiskTolerance:      "Conservative",
	}})

	working.TradingExperience = domain.ExperienceExpert
	working.PreferredTimeframe = "1H"
	working.RiskTolerance = domain.RiskConservative

	stored, err := users.GetDefault(ctx)
	if err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	if !stored.Equal(working) {
		t.Fatalf("committed user differs from working copy:\n got %+v\nwant %+v", stored, working)
	}

	v := snapshot(t, s)
	if v.Editing || v.User.Name != "Jordan Lee" {
		t.Fatalf("unexpected view after save: %+v", v)
	}
}

func TestShell_CancelLeavesCommittedUserUntouched(t *testing.T) {
	s, users := newTestShell(t)
	ctx := context.Background()
	before, _ := users.GetDefault(ctx)

	mustDispatch(t, s, SelectTab{Tab: "profile"})
	mustDispatch(t, s, ToggleEdit{})
	mustDispatch(t, s, StageProfileField{Field: FieldName, Value: "Draft"})
	mustDispatch(t, s, StageProfileField{Field: FieldRiskTolerance, Value: "Aggressive"})
	mustDispatch(t, s, CancelEdit{})

	after, _ := users.GetDefault(ctx)
	if !after.Equal(*before) {
		t.Fatalf("cancel changed committed user")
	}
	if snapshot(t, s).Editing {
		t.Fatalf("cancel should leave edit mode")
	}

	// Re-entering edit mode starts from the committed record again.
	mustDispatch(t, s, ToggleEdit{})
	if name := snapshot(t, s).Working.Name; name != "Alex Thompson" {
		t.Fatalf("working name=%q want Alex Thompson", name)
	}
}

func TestShell_TabSwitchDiscardsUnsavedEdit(t *testing.T) {
	s, users := newTestShell(t)

	mustDispatch(t, s, SelectTab{Tab: "profile"})
	mustDispatch(t, s, ToggleEdit{})
	mustDispatch(t, s, StageProfileField{Field: FieldName, Value: "Unsaved Name"})

	mustDispatch(t, s, SelectTab{Tab: "seasonal"})
	mustDispatch(t, s, SelectTab{Tab: "profile"})

	v := snapshot(t, s)
	if v.Editing {
		t.Fatalf("editor should be unmounted after leaving the profile tab")
	}
	if v.User.Name != "Alex Thompson" {
		t.Fatalf("name=%q want the committed name", v.User.Name)
	}
	stored, _ := users.GetDefault(context.Background())
	if stored.Name != "Alex Thompson" {
		t.Fatalf("unsaved edit leaked into the committed user")
	}

	if err := s.Dispatch(context.Background(), StageProfileField{Field: FieldName, Value: "x"}); !errors.Is(err, domain.ErrNotEditing) {
		t.Fatalf("err=%v want ErrNotEditing", err)
	}
}

func TestShell_ReselectingProfileKeepsEdit(t *testing.T) {
	s, _ := newTestShell(t)

	mustDispatch(t, s, SelectTab{Tab: "profile"})
	mustDispatch(t, s, ToggleEdit{})
	mustDispatch(t, s, StageProfileField{Field: FieldName, Value: "Still Here"})
	mustDispatch(t, s, SelectTab{Tab: "profile"})

	v := snapshot(t, s)
	if !v.Editing || v.Working.Name != "Still Here" {
		t.Fatalf("reselecting the active tab should not unmount the editor: %+v", v)
	}
}

func TestShell_SaveRejectsInvalidEnum(t *testing.T) {
	s, users := newTestShell(t)

	mustDispatch(t, s, SelectTab{Tab: "profile"})
	mustDispatch(t, s, ToggleEdit{})
	err := s.Dispatch(context.Background(), SaveProfile{Fields: map[string]string{
		FieldName:              "Jordan",
		FieldTradingExperience: "Grandmaster",
	}})
	if !errors.Is(err, domain.ErrInvalidTradingExperience) {
		t.Fatalf("err=%v want ErrInvalidTradingExperience", err)
	}

	stored, _ := users.GetDefault(context.Background())
	if stored.Name != "Alex Thompson" {
		t.Fatalf("failed save changed the committed user")
	}
	if !snapshot(t, s).Editing {
		t.Fatalf("failed save should stay in edit mode")
	}
}

func TestShell_SaveWithoutEditing(t *testing.T) {
	s, _ := newTestShell(t)
	if err := s.Dispatch(context.Background(), SaveProfile{}); !errors.Is(err, domain.ErrNotEditing) {
		t.Fatalf("err=%v want ErrNotEditing", err)
	}
}

func TestShell_ToggleMonth(t *testing.T) {
	s, _ := newTestShell(t)
	mustDispatch(t, s, SelectTab{Tab: "seasonal"})

	mustDispatch(t, s, ToggleMonth{Month: "April"})
	if v := snapshot(t, s); v.SelectedMonth != "April" || !v.HasSelection {
		t.Fatalf("selected=%q want April", v.SelectedMonth)
	}

	mustDispatch(t, s, ToggleMonth{Month: "June"})
	if v := snapshot(t, s); v.SelectedMonth != "June" {
		t.Fatalf("selected=%q want June", v.SelectedMonth)
	}

	mustDispatch(t, s, ToggleMonth{Month: "june"})
	if v := snapshot(t, s); v.HasSelection {
		t.Fatalf("selecting June again should clear, got %q", v.SelectedMonth)
	}

	mustDispatch(t, s, ToggleMonth{Month: "May"})
	mustDispatch(t, s, ClearMonth{})
	if snapshot(t, s).HasSelection {
		t.Fatalf("ClearMonth should clear the selection")
	}

	if err := s.Dispatch(context.Background(), ToggleMonth{Month: "Smarch"}); !errors.Is(err, domain.ErrMonthNotFound) {
		t.Fatalf("err=%v want ErrMonthNotFound", err)
	}
}

func TestShell_LeavingSeasonalClearsSelection(t *testing.T) {
	s, _ := newTestShell(t)
	mustDispatch(t, s, SelectTab{Tab: "seasonal"})
	mustDispatch(t, s, ToggleMonth{Month: "October"})
	mustDispatch(t, s, SelectTab{Tab: "dashboard"})
	mustDispatch(t, s, SelectTab{Tab: "seasonal"})

	if snapshot(t, s).HasSelection {
		t.Fatalf("selection should not survive leaving the seasonal tab")
	}
}
