package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors shared by repositories and the dashboard session
var (
	ErrUserNotFound             = errors.New("user not found")
	ErrMonthNotFound            = errors.New("month not found")
	ErrInvalidTradingExperience = errors.New("invalid trading experience")
	ErrInvalidRiskTolerance     = errors.New("invalid risk tolerance")
	ErrUnknownProfileField      = errors.New("unknown profile field")
	ErrNotEditing               = errors.New("profile editor is not in edit mode")
	ErrInvalidSeasonalTable     = errors.New("invalid seasonal table")
)

// UserRepository defines the interface for the committed user records
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetDefault retrieves the user the dashboard is rendered for
	GetDefault(ctx context.Context) (*User, error)

	// Replace swaps the stored record for the given user wholesale
	Replace(ctx context.Context, user *User) error

	// Reset restores the seed data
	Reset(ctx context.Context) error
}

// SeasonalRepository defines the interface for the seasonal tendency table
type SeasonalRepository interface {
	// List returns all twelve months in calendar order
	List(ctx context.Context) ([]SeasonalTendency, error)

	// GetByMonth retrieves a single month by name, case-insensitively
	GetByMonth(ctx context.Context, month string) (*SeasonalTendency, error)
}
