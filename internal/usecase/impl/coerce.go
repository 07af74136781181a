package impl

import (
	"strconv"
	"strings"
	"time"
)

// Best-effort numeric coercion for webhook fields. The platform mixes strings
// and numbers across payload versions; a value that fails to parse degrades to
// the zero value (Go has no integer NaN to carry through arithmetic) and the
// caller logs the field. Malformed input never fails the order.

func coerceInt64(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		// Accept values like "5.0" that arrive as decimal strings.
		if f, ferr := strconv.ParseFloat(trimmed, 64); ferr == nil {
			return int64(f), true
		}

		return 0, false
	}

	return v, true
}

func coerceFloat64(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

func coerceTime(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
