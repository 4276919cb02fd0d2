package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradeacademy/internal/domain"
)

// Shell is the state of one dashboard session: the active tab, the profile
// editor and the selected month. The committed user lives in the UserRepository
// and is only replaced through SaveProfile.
type Shell struct {
	id       uuid.UUID
	mu       sync.Mutex
	router   *TabRouter
	editor   ProfileEditor
	selected string // canonical month name, "" when nothing is selected

	userRepo     domain.UserRepository
	seasonalRepo domain.SeasonalRepository
	logger       *zap.Logger
}

// NewShell creates a new session shell on the dashboard tab
func NewShell(
	id uuid.UUID,
	userRepo domain.UserRepository,
	seasonalRepo domain.SeasonalRepository,
	logger *zap.Logger,
) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		id:           id,
		router:       NewTabRouter(),
		userRepo:     userRepo,
		seasonalRepo: seasonalRepo,
		logger:       logger.With(zap.String("session_id", id.String())),
	}
}

// ID returns the session id
func (s *Shell) ID() uuid.UUID {
	return s.id
}

// Command is a single user action applied to a Shell
type Command interface {
	apply(ctx context.Context, s *Shell) error
	name() string
}

// Dispatch applies a command. Commands on the same session are serialised.
func (s *Shell) Dispatch(ctx context.Context, cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := cmd.apply(ctx, s); err != nil {
		s.logger.Debug("command rejected", zap.String("command", cmd.name()), zap.Error(err))
		return err
	}

	s.logger.Debug("command applied",
		zap.String("command", cmd.name()),
		zap.String("tab", string(s.router.Active())),
		zap.Bool("editing", s.editor.Editing()),
		zap.String("selected_month", s.selected),
	)
	return nil
}

// View is a snapshot of a session for rendering
type View struct {
	SessionID     uuid.UUID
	ActiveTab     domain.TabID
	User          domain.User
	Editing       bool
	Working       domain.User
	SelectedMonth string
	HasSelection  bool
}

// Snapshot returns the current render state
func (s *Shell) Snapshot(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userRepo.GetDefault(ctx)
	if err != nil {
		return View{}, fmt.Errorf("failed to load committed user: %w", err)
	}

	view := View{
		SessionID:     s.id,
		ActiveTab:     s.router.Active(),
		User:          *user,
		Editing:       s.editor.Editing(),
		SelectedMonth: s.selected,
		HasSelection:  s.selected != "",
	}
	if view.Editing {
		view.Working = s.editor.Working()
	}

	return view, nil
}

func (s *Shell) committed(ctx context.Context) (domain.User, error) {
	user, err := s.userRepo.GetDefault(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to load committed user: %w", err)
	}
	return *user, nil
}

// updateUser commits a full replacement of the user record
func (s *Shell) updateUser(ctx context.Context, user domain.User) error {
	if err := s.userRepo.Replace(ctx, &user); err != nil {
		return fmt.Errorf("failed to commit profile: %w", err)
	}
	s.logger.Info("profile saved", zap.String("user_id", user.ID.String()))
	return nil
}

// SelectTab switches the active view. Leaving a tab unmounts its local state:
// the profile editor's working copy and the selected month are dropped.
type SelectTab struct {
	Tab string
}

func (c SelectTab) name() string { return "select_tab" }

func (c SelectTab) apply(_ context.Context, s *Shell) error {
	prev := s.router.Active()
	next := s.router.Select(c.Tab)

	if prev == next {
		return nil
	}
	if prev == domain.TabProfile {
		s.editor.Discard()
	}
	if prev == domain.TabSeasonal {
		s.selected = ""
	}
	return nil
}

// ToggleEdit is the profile header button: Edit Profile or Cancel
type ToggleEdit struct{}

func (c ToggleEdit) name() string { return "toggle_edit" }

func (c ToggleEdit) apply(ctx context.Context, s *Shell) error {
	user, err := s.committed(ctx)
	if err != nil {
		return err
	}
	s.editor.Toggle(user)
	return nil
}

// StageProfileField updates one field of the working copy
type StageProfileField struct {
	Field string
	Value string
}

func (c StageProfileField) name() string { return "stage_profile_field" }

func (c StageProfileField) apply(_ context.Context, s *Shell) error {
	return s.editor.Set(c.Field, c.Value)
}

// SaveProfile stages any submitted fields, then commits the working copy
// as a full replacement of the user.
type SaveProfile struct {
	Fields map[string]string
}

func (c SaveProfile) name() string { return "save_profile" }

var profileFieldOrder = []string{
	FieldName,
	FieldTradingExperience,
	FieldPreferredTimeframe,
	FieldRiskTolerance,
}

func (c SaveProfile) apply(ctx context.Context, s *Shell) error {
	if !s.editor.Editing() {
		return domain.ErrNotEditing
	}

	for _, field := range profileFieldOrder {
		value, ok := c.Fields[field]
		if !ok {
			continue
		}
		if err := s.editor.Set(field, value); err != nil {
			return err
		}
	}

	working, err := s.editor.Save()
	if err != nil {
		return err
	}

	if err := s.updateUser(ctx, working); err != nil {
		// Keep the staged edits so the user can retry.
		s.editor.Begin(working)
		return err
	}
	return nil
}

// CancelEdit discards staged edits and leaves edit mode
type CancelEdit struct{}

func (c CancelEdit) name() string { return "cancel_edit" }

func (c CancelEdit) apply(ctx context.Context, s *Shell) error {
	user, err := s.committed(ctx)
	if err != nil {
		return err
	}
	s.editor.Cancel(user)
	return nil
}

// ToggleMonth selects a month, or clears the selection when it is already selected
type ToggleMonth struct {
	Month string
}

func (c ToggleMonth) name() string { return "toggle_month" }

func (c ToggleMonth) apply(ctx context.Context, s *Shell) error {
	month, err := s.seasonalRepo.GetByMonth(ctx, c.Month)
	if err != nil {
		return err
	}

	if s.selected == month.Month {
		s.selected = ""
		return nil
	}
	s.selected = month.Month
	return nil
}

// ClearMonth closes the month detail panel
type ClearMonth struct{}

func (c ClearMonth) name() string { return "clear_month" }

func (c ClearMonth) apply(_ context.Context, s *Shell) error {
	s.selected = ""
	return nil
}
