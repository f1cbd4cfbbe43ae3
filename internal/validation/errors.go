package validation

import "fmt"

// ValidationError reports user input that was rejected before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// DateParseError reports a deadline literal that is not a DD/MM/YYYY date.
type DateParseError struct {
	Input string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid deadline %q: expected DD/MM/YYYY", e.Input)
}
