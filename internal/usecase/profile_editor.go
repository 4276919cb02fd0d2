package usecase

import (
	"fmt"

	"tradeacademy/internal/domain"
)

// Editable profile fields
const (
	FieldName               = "name"
	FieldTradingExperience  = "trading_experience"
	FieldPreferredTimeframe = "preferred_timeframe"
	FieldRiskTolerance      = "risk_tolerance"
)

// ProfileEditor stages edits on a working copy of a user.
// The committed user is never touched; Save hands the working copy back to the caller.
type ProfileEditor struct {
	working domain.User
	editing bool
}

// Editing reports whether the editor is in edit mode
func (e *ProfileEditor) Editing() bool {
	return e.editing
}

// Working returns a copy of the staged user
func (e *ProfileEditor) Working() domain.User {
	return e.working.Clone()
}

// Begin enters edit mode with a working copy seeded from committed
func (e *ProfileEditor) Begin(committed domain.User) {
	e.working = committed.Clone()
	e.editing = true
}

// Toggle begins editing when idle and cancels when already editing
func (e *ProfileEditor) Toggle(committed domain.User) {
	if e.editing {
		e.Cancel(committed)
		return
	}
	e.Begin(committed)
}

// Cancel resets the working copy to committed and leaves edit mode
func (e *ProfileEditor) Cancel(committed domain.User) {
	e.working = committed.Clone()
	e.editing = false
}

// Discard drops the working copy entirely
func (e *ProfileEditor) Discard() {
	e.working = domain.User{}
	e.editing = false
}

// SetName stages a new display name. Empty names are accepted.
func (e *ProfileEditor) SetName(name string) error {
	if !e.editing {
		return domain.ErrNotEditing
	}
	e.working.Name = name
	return nil
}

// SetTradingExperience stages an experience band
func (e *ProfileEditor) SetTradingExperience(raw string) error {
	if !e.editing {
		return domain.ErrNotEditing
	}
	experience, err := domain.ParseTradingExperience(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", err, raw)
	}
	e.working.TradingExperience = experience
	return nil
}

// SetPreferredTimeframe stages the free-text timeframe
func (e *ProfileEditor) SetPreferredTimeframe(timeframe string) error {
	if !e.editing {
		return domain.ErrNotEditing
	}
	e.working.PreferredTimeframe = timeframe
	return nil
}

// SetRiskTolerance stages a risk tolerance
func (e *ProfileEditor) SetRiskTolerance(raw string) error {
	if !e.editing {
		return domain.ErrNotEditing
	}
	tolerance, err := domain.ParseRiskTolerance(raw)
	if err != nil {
		return fmt.Errorf("%w: %q", err, raw)
	}
	e.working.RiskTolerance = tolerance
	return nil
}

// Set stages a field by its form name
func (e *ProfileEditor) Set(field, value string) error {
	switch field {
	case FieldName:
		return e.SetName(value)
	case FieldTradingExperience:
		return e.SetTradingExperience(value)
	case FieldPreferredTimeframe:
		return e.SetPreferredTimeframe(value)
	case FieldRiskTolerance:
		return e.SetRiskTolerance(value)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownProfileField, field)
	}
}

// Save leaves edit mode and returns the working copy for commit
func (e *ProfileEditor) Save() (domain.User, error) {
	if !e.editing {
		return domain.User{}, domain.ErrNotEditing
	}
	e.editing = false
	return e.working.Clone(), nil
}
