package util

import (
	"fmt"
	"time"
)

// TimeProvider resolves timestamps in a configured timezone
type TimeProvider struct {
	location *time.Location
}

// NewTimeProvider creates a provider for timezone; "" and "Local" mean the
// system zone.
func NewTimeProvider(timezone string) (*TimeProvider, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, America/New_York, Asia/Seoul, Europe/London", timezone, err)
		}
		loc = l
	}
	return &TimeProvider{location: loc}, nil
}

// Location returns the configured timezone
func (tp *TimeProvider) Location() *time.Location {
	return tp.location
}
