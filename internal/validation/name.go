package validation

import (
	"strings"
	"unicode/utf8"
)

const maxTextLength = 500

// ValidateName validates a goal name
func ValidateName(name string) error {
	return validateText("name", name)
}

// ValidateDescription validates a task description
func ValidateDescription(description string) error {
	return validateText("description", description)
}

func validateText(field, value string) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}

	if utf8.RuneCountInString(trimmed) > maxTextLength {
		return &ValidationError{Field: field, Message: "is too long (max 500 characters)"}
	}

	return nil
}
