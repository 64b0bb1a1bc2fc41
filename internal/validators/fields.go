package validators

import (
	"strings"
	"time"
)

const (
	NameMaxLen     = 50
	ServiceNameMax = 100
	MaxDurationMin = 180
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
)

// IsDate reports whether s is a valid "2006-01-02" date.
func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsClockTime reports whether s is a valid "15:04" time of day.
func IsClockTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// PersonName validates a first or last name (1–50 chars after trimming).
func PersonName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 1 && len(s) <= NameMaxLen
}

// ServiceName validates a service name (1–100 chars after trimming).
func ServiceName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 1 && len(s) <= ServiceNameMax
}

// Duration validates a service duration in minutes (1–180).
func Duration(min int) bool {
	return min >= 1 && min <= MaxDurationMin
}

// Price validates a service price.
func Price(p float64) bool {
	return p > 0
}
