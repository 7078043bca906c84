package helpers

import (
	"time"

	"github.com/yigit/lmsdash/internal/pkg/logger"
)

// DateLayout is the calendar-date layout used by fixtures and query input
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: this runs while the configuration is still being read.
		logger.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Date returns midnight UTC of the given calendar date. It panics on a
// malformed date and is meant for static data only.
func Date(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		panic("helpers: invalid date " + value)
	}
	return t.UTC()
}
