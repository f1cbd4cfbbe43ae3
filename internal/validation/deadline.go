package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/templui/goaltracker/internal/model"
)

// ParseDeadline parses an optional deadline written as DD/MM/YYYY (day and
// month may have one digit) or as the digits-only form DDMMYYYY.
// A blank input means "no deadline" and returns nil.
func ParseDeadline(raw string) (*model.Date, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var day, month, year string
	if strings.Contains(trimmed, "/") {
		parts := strings.Split(trimmed, "/")
		if len(parts) != 3 || len(parts[0]) > 2 || len(parts[1]) > 2 {
			return nil, &DateParseError{Input: raw}
		}
		day, month, year = parts[0], parts[1], parts[2]
	} else {
		if len(trimmed) != 8 {
			return nil, &DateParseError{Input: raw}
		}
		day, month, year = trimmed[0:2], trimmed[2:4], trimmed[4:8]
	}

	if len(year) != 4 {
		return nil, &DateParseError{Input: raw}
	}

	d, ok1 := atoiDigits(day)
	m, ok2 := atoiDigits(month)
	y, ok3 := atoiDigits(year)
	if !ok1 || !ok2 || !ok3 || y == 0 {
		return nil, &DateParseError{Input: raw}
	}

	// time.Date normalizes overflow (31/02 -> 03/03), so round-trip to
	// reject dates that do not exist.
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m || t.Year() != y {
		return nil, &DateParseError{Input: raw}
	}

	date := model.DateOf(t)
	return &date, nil
}

func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// ParseDay parses a required date given either as YYYY-MM-DD or in one of
// the deadline forms.
func ParseDay(raw string) (model.Date, error) {
	trimmed := strings.TrimSpace(raw)
	if date, err := model.ParseDate(trimmed); err == nil {
		return date, nil
	}

	date, err := ParseDeadline(trimmed)
	if err != nil {
		return model.Date{}, err
	}
	if date == nil {
		return model.Date{}, &DateParseError{Input: raw}
	}
	return *date, nil
}
