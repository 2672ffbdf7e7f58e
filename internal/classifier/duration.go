package classifier

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(horas?|hours?|mins?|minutos?|días?|dias?)`)

// ParseDurationMinutes converts an SLA duration such as "2.0 horas" or
// "45 mins" into minutes. Strings with no recognizable number and unit
// yield 0 rather than an error.
func ParseDurationMinutes(s string) float64 {
	m := durationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	unit := m[2]
	switch {
	case strings.HasPrefix(unit, "min"):
		return value
	case strings.HasPrefix(unit, "hora"), strings.HasPrefix(unit, "hour"):
		return value * 60
	case strings.HasPrefix(unit, "día"), strings.HasPrefix(unit, "dia"):
		return value * 24 * 60
	}
	return 0
}

// ParseMinutes reads a user-entered time: a bare number is minutes, anything
// else must be a duration ParseDurationMinutes understands. Empty input is 0.
func ParseMinutes(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	if !durationPattern.MatchString(strings.ToLower(s)) {
		return 0, invalid("unrecognized time %q, use minutes or e.g. \"2 horas\"", s)
	}
	return ParseDurationMinutes(s), nil
}
