package utils

import (
	"sync"
	"time"
)

var (
	displayLoc   = time.UTC
	displayLocMu sync.RWMutex
)

// SetDisplayTimezone sets the timezone dates are rendered in.
// It falls back to UTC when the zone cannot be loaded.
func SetDisplayTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}

	displayLocMu.Lock()
	displayLoc = loc
	displayLocMu.Unlock()

	return err
}

// GetLocation returns the display *time.Location
func GetLocation() *time.Location {
	displayLocMu.RLock()
	defer displayLocMu.RUnlock()
	return displayLoc
}

// Now returns the current time in the display timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}
