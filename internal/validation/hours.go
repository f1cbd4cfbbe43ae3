package validation

import (
	"strconv"
	"strings"
)

// MaxHours caps every hours value, goal targets included.
const MaxHours = 100000

// ParseHours parses a positive whole number of hours. Only ASCII digits are
// accepted, so signs, decimals and whitespace inside the number are rejected.
func ParseHours(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ValidationError{Field: "hours", Message: "is required"}
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return 0, &ValidationError{Field: "hours", Message: "must be a whole number"}
		}
	}

	hours, err := strconv.Atoi(trimmed)
	if err != nil || hours > MaxHours {
		return 0, &ValidationError{Field: "hours", Message: "is too large"}
	}

	if err := ValidateHours(hours); err != nil {
		return 0, err
	}

	return hours, nil
}

func ValidateHours(hours int) error {
	if hours <= 0 {
		return &ValidationError{Field: "hours", Message: "must be greater than zero"}
	}
	if hours > MaxHours {
		return &ValidationError{Field: "hours", Message: "is too large"}
	}
	return nil
}
