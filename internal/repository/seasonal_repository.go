package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tradeacademy/internal/domain"
)

// SeasonalRepositoryImpl implements the SeasonalRepository interface over a fixed table
type SeasonalRepositoryImpl struct {
	table []domain.SeasonalTendency
}

// NewSeasonalRepository creates a new SeasonalRepository after validating the table
func NewSeasonalRepository(table []domain.SeasonalTendency) (domain.SeasonalRepository, error) {
	if err := ValidateSeasonalTable(table); err != nil {
		return nil, err
	}
	return &SeasonalRepositoryImpl{table: cloneTable(table)}, nil
}

// List returns all months in calendar order
func (r *SeasonalRepositoryImpl) List(ctx context.Context) ([]domain.SeasonalTendency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneTable(r.table), nil
}

// GetByMonth retrieves a month by name
func (r *SeasonalRepositoryImpl) GetByMonth(ctx context.Context, month string) (*domain.SeasonalTendency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, entry := range r.table {
		if strings.EqualFold(entry.Month, month) {
			found := cloneTendency(entry)
			return &found, nil
		}
	}

	return nil, fmt.Errorf("failed to get month %q: %w", month, domain.ErrMonthNotFound)
}

// ValidateSeasonalTable checks the authoring rules of the tendency table:
// the twelve calendar months in order, known tendencies and strength within 0-100.
func ValidateSeasonalTable(table []domain.SeasonalTendency) error {
	if len(table) != 12 {
		return fmt.Errorf("%w: expected 12 months, got %d", domain.ErrInvalidSeasonalTable, len(table))
	}

	for i, entry := range table {
		if entry.Month == "" {
			return fmt.Errorf("%w: empty month name at position %d", domain.ErrInvalidSeasonalTable, i+1)
		}
		if want := time.Month(i + 1).String(); entry.Month != want {
			return fmt.Errorf("%w: position %d is %q, want %q", domain.ErrInvalidSeasonalTable, i+1, entry.Month, want)
		}

		if !entry.Tendency.Valid() {
			return fmt.Errorf("%w: %s has unknown tendency %q", domain.ErrInvalidSeasonalTable, entry.Month, entry.Tendency)
		}
		if entry.Strength < 0 || entry.Strength > 100 {
			return fmt.Errorf("%w: %s strength %d out of range", domain.ErrInvalidSeasonalTable, entry.Month, entry.Strength)
		}
	}

	return nil
}

func cloneTendency(entry domain.SeasonalTendency) domain.SeasonalTendency {
	clone := entry
	clone.HistoricalData = make([]domain.HistoricalPerformance, len(entry.HistoricalData))
	copy(clone.HistoricalData, entry.HistoricalData)
	return clone
}

func cloneTable(table []domain.SeasonalTendency) []domain.SeasonalTendency {
	out := make([]domain.SeasonalTendency, 0, len(table))
	for _, entry := range table {
		out = append(out, cloneTendency(entry))
	}
	return out
}
